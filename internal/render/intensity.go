package render

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// IntensityMode selects how a sampled color is reduced to a single
// brightness value in [0, 255].
type IntensityMode int

const (
	// ModeLuminance is the standard grayscale conversion using ITU-R
	// BT.601 weights (0.299*R + 0.587*G + 0.114*B). This is the default.
	ModeLuminance IntensityMode = iota

	// ModeLightness uses the L component of the HSL color space, which
	// weighs only the brightest and darkest channels of a pixel.
	ModeLightness

	// ModeAverage uses the arithmetic mean of the R, G, and B channels.
	ModeAverage
)

// String returns the flag-friendly name of the mode.
func (m IntensityMode) String() string {
	switch m {
	case ModeLuminance:
		return "luminance"
	case ModeLightness:
		return "lightness"
	case ModeAverage:
		return "average"
	default:
		return "unknown"
	}
}

// ParseIntensityMode converts a mode name ("luminance", "lightness",
// "average") to its IntensityMode.
func ParseIntensityMode(s string) (IntensityMode, error) {
	switch s {
	case "luminance":
		return ModeLuminance, nil
	case "lightness":
		return ModeLightness, nil
	case "average":
		return ModeAverage, nil
	default:
		return 0, fmt.Errorf("unknown intensity mode %q", s)
	}
}

// intensity reduces a color to a brightness value in [0, 255] using the
// given mode. All modes are deterministic for a given color.
func intensity(c color.Color, mode IntensityMode) uint8 {
	r, g, b, _ := c.RGBA()
	r8, g8, b8 := r>>8, g>>8, b>>8

	switch mode {
	case ModeLightness:
		cf, ok := colorful.MakeColor(c)
		if !ok {
			// Fully transparent pixel, treat as black.
			return 0
		}
		_, _, l := cf.Hsl()
		if l < 0 {
			l = 0
		} else if l > 1 {
			l = 1
		}
		return uint8(l * 255)
	case ModeAverage:
		return uint8((r8 + g8 + b8) / 3)
	default:
		return uint8((299*r8 + 587*g8 + 114*b8) / 1000)
	}
}
