package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Style describes the look of a profile chart. Sizes of lines and fonts are given in
// points and scaled by DPI.
type Style struct {
	WidthInches  float64 `validate:"gt=0,lte=40"`
	HeightInches float64 `validate:"gt=0,lte=40"`
	DPI          float64 `validate:"gt=0,lte=1200"`

	LineColor color.Color `validate:"required"`
	LineWidth float64     `validate:"gt=0"`
	GridColor color.Color `validate:"required"`

	TickFontSize  float64 `validate:"gt=0"`
	TitleFontSize float64 `validate:"gt=0"`
	LabelFontSize float64 `validate:"gt=0"`
}

func DefaultStyle() Style {
	return Style{
		WidthInches:   8,
		HeightInches:  3,
		DPI:           300,
		LineColor:     color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff},
		LineWidth:     0.8,
		GridColor:     color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		TickFontSize:  10,
		TitleFontSize: 12,
		LabelFontSize: 6,
	}
}

// ParseColor parses a hex color such as "#666666".
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("parse color '%s': %w", hex, err)
	}
	return c, nil
}

// PixelSize returns the canvas size in pixels.
func (s Style) PixelSize() (int, int) {
	return int(s.WidthInches*s.DPI + 0.5), int(s.HeightInches*s.DPI + 0.5)
}

// points converts a length in points to pixels.
func (s Style) points(pt float64) float64 {
	return pt * s.DPI / 72
}
