package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Palette is an ordered sequence of characters used to represent
// brightness buckets.
//
// Index 0 is the character emitted for the darkest source pixels and the
// last index for the brightest. With the conventional dark terminal ramp
// " .:-=+*#%@" this means index 0 holds the visually lightest glyph
// (space), so black pixels render as empty cells.
//
// A palette is immutable for the duration of a conversion and must contain
// at least one character.
type Palette []rune

// DefaultPalette is the classic ten-character brightness ramp: space for
// the darkest bucket through '@' for the brightest.
var DefaultPalette = Palette(" .:-=+*#%@")

// ParsePalette builds a Palette from a string, one rune per bucket.
//
// It rejects an empty string and any rune that does not occupy exactly one
// terminal cell (combining marks, East Asian wide characters, etc.), since
// such runes would break the fixed row width of the output grid.
func ParsePalette(s string) (Palette, error) {
	if s == "" {
		return nil, fmt.Errorf("palette must contain at least one character")
	}
	p := Palette(s)
	for i, r := range p {
		if w := runewidth.RuneWidth(r); w != 1 {
			return nil, fmt.Errorf("palette character %d (%q) occupies %d terminal cells, want 1", i, r, w)
		}
	}
	return p, nil
}

// Index returns the palette position for an intensity in [0, 255].
//
// The 0-255 range is divided into len(p) equal-width buckets:
//
//	index = floor(p / 256 * len)
//
// The result is clamped to [0, len-1] and is monotonic non-decreasing in
// the intensity. Index panics on an empty palette; Render validates the
// palette before any pixel is mapped.
func (p Palette) Index(intensity uint8) int {
	idx := int(intensity) * len(p) / 256
	if idx >= len(p) {
		idx = len(p) - 1
	}
	return idx
}

// Char returns the palette character for an intensity in [0, 255].
func (p Palette) Char(intensity uint8) rune {
	return p[p.Index(intensity)]
}
