// Package visualizer turns a rasterised waveform into text for the terminal.
package visualizer

import (
	"image"
	"image/color"
	"strings"
)

// asciiRamp maps brightness to characters, darkest first.
const asciiRamp = " .:-=+*#%@"

// Encoder converts RGBA images into terminal text at a chosen density.
// The builder is reused between calls, so an Encoder is not safe for
// concurrent use.
type Encoder struct {
	Density Density

	profile colorProfile
	sb      strings.Builder
}

// NewEncoder returns an encoder for d using the terminal's colour profile.
func NewEncoder(d Density) *Encoder {
	return &Encoder{Density: d, profile: currentColorProfile()}
}

// Cells returns the terminal cells needed to show a w by h pixel image.
func (e *Encoder) Cells(w, h int) (cols, rows int) {
	dc, dr := e.Density.DotSize()
	return ceilDiv(w, dc), ceilDiv(h, dr)
}

// Pixels returns the raster size that fills cols by rows terminal cells.
func (e *Encoder) Pixels(cols, rows int) (w, h int) {
	dc, dr := e.Density.DotSize()
	return max(cols, 0) * dc, max(rows, 0) * dr
}

// Encode renders img as lines of terminal text. Pixels equal to bg are left
// blank so the terminal background shows through.
func (e *Encoder) Encode(img *image.RGBA, bg color.Color) string {
	if img == nil || img.Bounds().Empty() {
		return ""
	}
	bgRGBA := color.RGBAModel.Convert(bg).(color.RGBA)

	e.sb.Reset()
	cols, rows := e.Cells(img.Bounds().Dx(), img.Bounds().Dy())
	e.sb.Grow(cols * rows * 24)

	switch e.Density {
	case HalfBlock:
		e.encodeHalfBlock(img, bgRGBA, cols, rows)
	case ASCII:
		e.encodeASCII(img, bgRGBA, cols, rows)
	default:
		e.encodeBraille(img, bgRGBA, cols, rows)
	}
	return e.sb.String()
}

func (e *Encoder) encodeBraille(img *image.RGBA, bg color.RGBA, cols, rows int) {
	origin := img.Bounds().Min
	state := newANSIState(e.profile)
	for row := range rows {
		for col := range cols {
			ch, c := brailleCell(img, origin.X+col*2, origin.Y+row*4, bg)
			if ch != brailleBlank {
				state.setFg(&e.sb, c)
			}
			e.sb.WriteRune(ch)
		}
		state.reset(&e.sb)
		if row < rows-1 {
			e.sb.WriteByte('\n')
		}
	}
}

// encodeHalfBlock uses "▀" with fg = top pixel and bg = bottom pixel. Without
// colour support it falls back to block glyphs chosen by which half is lit.
func (e *Encoder) encodeHalfBlock(img *image.RGBA, bg color.RGBA, cols, rows int) {
	b := img.Bounds()
	bgc := rgbOf(bg)
	state := newANSIState(e.profile)
	for row := range rows {
		for col := range cols {
			x := b.Min.X + col
			top := img.RGBAAt(x, b.Min.Y+row*2)
			bottom := bg
			if y := b.Min.Y + row*2 + 1; y < b.Max.Y {
				bottom = img.RGBAAt(x, y)
			}
			topLit, bottomLit := top != bg, bottom != bg

			if e.profile == colorNone {
				e.sb.WriteString(blockGlyph(topLit, bottomLit))
				continue
			}
			if !topLit && !bottomLit {
				state.reset(&e.sb)
				e.sb.WriteByte(' ')
				continue
			}
			fg, back := rgbOf(top), rgbOf(bottom)
			if !topLit {
				fg = bgc
			}
			if !bottomLit {
				back = bgc
			}
			state.setFg(&e.sb, fg)
			state.setBg(&e.sb, back)
			e.sb.WriteString("▀")
		}
		state.reset(&e.sb)
		if row < rows-1 {
			e.sb.WriteByte('\n')
		}
	}
}

func blockGlyph(top, bottom bool) string {
	switch {
	case top && bottom:
		return "█"
	case top:
		return "▀"
	case bottom:
		return "▄"
	default:
		return " "
	}
}

// encodeASCII maps each lit pixel to a brightness character.
func (e *Encoder) encodeASCII(img *image.RGBA, bg color.RGBA, cols, rows int) {
	b := img.Bounds()
	for row := range rows {
		for col := range cols {
			px := img.RGBAAt(b.Min.X+col, b.Min.Y+row)
			if px == bg {
				e.sb.WriteByte(' ')
				continue
			}
			e.sb.WriteByte(brightnessChar(luminance(rgbOf(px))))
		}
		if row < rows-1 {
			e.sb.WriteByte('\n')
		}
	}
}

// brightnessChar never returns the blank ramp entry, so lit pixels stay visible.
func brightnessChar(lum uint8) byte {
	idx := 1 + int(lum)*(len(asciiRamp)-1)/256
	return asciiRamp[idx]
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
