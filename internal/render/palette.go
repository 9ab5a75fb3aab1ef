package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colours used for a waveform.
type Palette struct {
	Background     color.Color
	CenterLine     color.Color
	ExpandedFill   color.Color
	ExpandedStroke color.Color
	CollapsedFill  color.Color
}

// DefaultPalette returns dark grey with a blue centre line and light samples.
func DefaultPalette() Palette {
	return Palette{
		Background:     gray(0.3),
		CenterLine:     toRGBA(colorful.Color{R: 0, G: 0, B: 1}),
		ExpandedFill:   gray(0.9),
		ExpandedStroke: gray(1.0),
		CollapsedFill:  gray(1.0),
	}
}

// PaletteEntries lists the names accepted by Palette.With.
var PaletteEntries = []string{
	"background",
	"center-line",
	"expanded-fill",
	"expanded-stroke",
	"collapsed-fill",
}

// With returns a copy of p with the named entry set to a hex colour such as
// "#3366ff".
func (p Palette) With(entry, hex string) (Palette, error) {
	c, err := ParseColor(hex)
	if err != nil {
		return p, err
	}
	switch entry {
	case "background":
		p.Background = c
	case "center-line":
		p.CenterLine = c
	case "expanded-fill":
		p.ExpandedFill = c
	case "expanded-stroke":
		p.ExpandedStroke = c
	case "collapsed-fill":
		p.CollapsedFill = c
	default:
		return p, fmt.Errorf("%q: %w", entry, ErrUnknownColor)
	}
	return p, nil
}

// ParseColor parses a "#rrggbb" or "#rgb" colour.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parsing colour %q: %w", hex, err)
	}
	return toRGBA(c), nil
}

func gray(v float64) color.RGBA {
	return toRGBA(colorful.Color{R: v, G: v, B: v})
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
