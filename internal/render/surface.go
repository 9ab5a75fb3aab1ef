package render

import "image/color"

// Point is a position in surface units.
type Point struct {
	X, Y float64
}

// Surface is a raster sink for drawing primitives. Coordinates are in device
// units relative to the current origin.
type Surface interface {
	Size() (w, h float64)
	SetFill(c color.Color)
	SetStroke(c color.Color)
	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	StrokeLine(x0, y0, x1, y1 float64)
	FillPolygon(pts []Point)
	StrokePolygon(pts []Point)
	// Translate moves the origin. Save and Restore push and pop the origin
	// together with the fill and stroke colours.
	Translate(dx, dy float64)
	Save()
	Restore()
}
