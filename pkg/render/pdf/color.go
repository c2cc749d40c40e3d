package pdf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/packlist/pkg/errors"
)

// Color is an RGB colour with 0-255 components
type Color struct {
	R, G, B int
}

// DefaultPalette cycles across visible sections
var DefaultPalette = []Color{
	{R: 46, G: 111, B: 149},
	{R: 90, G: 143, B: 41},
	{R: 181, G: 101, B: 29},
	{R: 123, G: 79, B: 157},
	{R: 162, G: 59, B: 59},
}

// ParseColor parses "#rrggbb" or "rrggbb"
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, errors.Newf(errors.ErrInvalidInput, "invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.Wrapf(err, errors.ErrInvalidInput, "invalid colour %q", s)
	}
	return Color{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, nil
}

// ParsePalette parses a list of hex colours
func ParsePalette(values []string) ([]Color, error) {
	out := make([]Color, 0, len(values))
	for _, v := range values {
		c, err := ParseColor(v)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Hex returns the colour as "#rrggbb"
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// PaletteColor returns the colour for the section at index
func PaletteColor(palette []Color, index int) Color {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if index < 0 {
		index = -index
	}
	return palette[index%len(palette)]
}
