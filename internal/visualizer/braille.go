package visualizer

import (
	"image"
	"image/color"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

const brailleBlank = rune(0x2800)

// brailleCell returns the dot pattern of the 2x4 block whose top-left pixel
// is (x0, y0) and the mean colour of its lit dots. Pixels equal to bg, or
// outside the image, stay unlit.
func brailleCell(img *image.RGBA, x0, y0 int, bg color.RGBA) (rune, colorRGB) {
	b := img.Bounds()
	var pattern rune
	var r, g, bl, lit int
	for dc := range 2 {
		for dr := range 4 {
			p := image.Pt(x0+dc, y0+dr)
			if !p.In(b) {
				continue
			}
			px := img.RGBAAt(p.X, p.Y)
			if px == bg {
				continue
			}
			pattern |= 1 << brailleBits[dc][dr]
			r += int(px.R)
			g += int(px.G)
			bl += int(px.B)
			lit++
		}
	}
	if lit == 0 {
		return brailleBlank, colorRGB{}
	}
	return brailleBlank + pattern, colorRGB{
		R: uint8(r / lit),
		G: uint8(g / lit),
		B: uint8(bl / lit),
	}
}
