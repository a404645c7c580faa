package render

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif" // Register GIF format decoder (PNG/JPEG/BMP come with imgio)
	"os"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// DefaultWidth is the output width, in characters, used by callers that do
// not have a better value (historically sized for an 80-column terminal).
const DefaultWidth = 80

// Options configures a conversion.
type Options struct {
	// Width is the number of characters per output row. Must be positive;
	// use DefaultWidth when in doubt.
	Width int

	// Palette is the ordered brightness ramp. Must contain at least one
	// character; see DefaultPalette.
	Palette Palette

	// Mode selects the grayscale conversion. The zero value is
	// ModeLuminance, the standard conversion.
	Mode IntensityMode
}

// validate rejects parameter combinations the pixel loop cannot handle.
func (o Options) validate() error {
	if o.Width <= 0 {
		return invalidParameterError(fmt.Errorf("output width %d, must be positive", o.Width))
	}
	if len(o.Palette) == 0 {
		return invalidParameterError(errors.New("palette must contain at least one character"))
	}
	return nil
}

// Render converts the image at path into an ASCII art string.
//
// The path must reference an existing file in a supported raster format
// (PNG, JPEG, BMP, or single-frame GIF). Existence is checked before any
// decode attempt. The conversion resamples the image to a Width x height
// grid (see GridFor), reduces each cell to an intensity via Options.Mode,
// and maps each intensity to a palette character. Every row, including the
// last, is terminated by '\n'.
//
// All anticipated failures are returned as *Error values:
//   - KindNotFound: empty path, or the file does not exist
//   - KindDecode: the file exists but is not a decodable image
//   - KindInvalidParameter: non-positive width or empty palette
//
// Render reads the filesystem but has no other side effects: no writes, no
// global state, and no caching between calls.
func Render(path string, opts Options) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	if path == "" {
		return "", notFoundError(path, errors.New("empty path"))
	}
	if _, err := os.Stat(path); err != nil {
		return "", notFoundError(path, err)
	}

	img, err := imgio.Open(path)
	if err != nil {
		// The stat above makes a missing file here a race, but keep the
		// kinds honest either way.
		if errors.Is(err, os.ErrNotExist) {
			return "", notFoundError(path, err)
		}
		return "", decodeError(path, err)
	}

	return convert(img, opts)
}

// RenderImage converts an already-decoded image into an ASCII art string.
//
// It is the in-memory half of Render: the same grid computation, intensity
// reduction, and palette mapping without any filesystem access. The image
// must have positive dimensions.
func RenderImage(img image.Image, opts Options) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	return convert(img, opts)
}

// convert runs the resample-and-map pipeline over a decoded image.
// Options are assumed validated.
func convert(img image.Image, opts Options) (string, error) {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return "", invalidParameterError(fmt.Errorf("source image has degenerate dimensions %dx%d", srcW, srcH))
	}

	gridW, gridH := GridFor(opts.Width, srcW, srcH)
	resized := imaging.Resize(img, gridW, gridH, imaging.Lanczos)

	var sb strings.Builder
	sb.Grow((gridW + 1) * gridH)

	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			p := intensity(resized.At(x, y), opts.Mode)
			sb.WriteRune(opts.Palette.Char(p))
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}
