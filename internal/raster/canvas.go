// Package raster implements render.Surface on an in-memory RGBA image.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/olivier-w/wavedraw/internal/render"
)

type state struct {
	ox, oy float64
	fill   color.Color
	stroke color.Color
}

// Canvas is a fixed-size RGBA surface. Fills are rasterised with
// golang.org/x/image/vector; strokes are one pixel wide.
type Canvas struct {
	img     *image.RGBA
	cur     state
	stack   []state
	ras     *vector.Rasterizer
	scratch []render.Point
}

// New allocates a w by h canvas. Negative sizes are treated as zero.
func New(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		cur: state{fill: color.Black, stroke: color.Black},
		ras: vector.NewRasterizer(w, h),
	}
}

// Image returns the backing image. It is reused across draws.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) SetFill(col color.Color)   { c.cur.fill = col }
func (c *Canvas) SetStroke(col color.Color) { c.cur.stroke = col }

func (c *Canvas) Translate(dx, dy float64) {
	c.cur.ox += dx
	c.cur.oy += dy
}

func (c *Canvas) Save() { c.stack = append(c.stack, c.cur) }

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	if !finite(x, y, w, h) {
		return
	}
	clip := c.clipBox()
	x0 := int(math.Round(clip.clampX(x + c.cur.ox)))
	y0 := int(math.Round(clip.clampY(y + c.cur.oy)))
	x1 := int(math.Round(clip.clampX(x + w + c.cur.ox)))
	y1 := int(math.Round(clip.clampY(y + h + c.cur.oy)))
	r := image.Rect(x0, y0, x1, y1).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(c.cur.fill), image.Point{}, draw.Over)
}

func (c *Canvas) StrokeRect(x, y, w, h float64) {
	c.StrokePolygon([]render.Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	})
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64) {
	c.line(x0, y0, x1, y1, c.cur.stroke)
}

func (c *Canvas) FillPolygon(pts []render.Point) {
	if len(pts) < 3 {
		return
	}
	b := c.img.Bounds()
	if b.Empty() {
		return
	}
	c.scratch = c.scratch[:0]
	for _, p := range pts {
		if !finite(p.X, p.Y) {
			return
		}
		c.scratch = append(c.scratch, render.Point{X: p.X + c.cur.ox, Y: p.Y + c.cur.oy})
	}
	poly := clipPolygon(c.scratch, c.clipBox())
	if len(poly) < 3 {
		return
	}
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		c.ras.LineTo(float32(p.X), float32(p.Y))
	}
	c.ras.ClosePath()
	c.ras.Draw(c.img, b, image.NewUniform(c.cur.fill), image.Point{})
}

func (c *Canvas) StrokePolygon(pts []render.Point) {
	if len(pts) < 2 {
		return
	}
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		c.line(p.X, p.Y, q.X, q.Y, c.cur.stroke)
	}
}

// line plots a one pixel Bresenham line between the rounded end points. The
// segment is clipped first so the work is bounded by the canvas size.
func (c *Canvas) line(fx0, fy0, fx1, fy1 float64, col color.Color) {
	fx0, fy0, fx1, fy1, ok := clipSegment(fx0+c.cur.ox, fy0+c.cur.oy, fx1+c.cur.ox, fy1+c.cur.oy, c.clipBox())
	if !ok {
		return
	}
	x0 := int(math.Round(fx0))
	y0 := int(math.Round(fy0))
	x1 := int(math.Round(fx1))
	y1 := int(math.Round(fy1))
	b := c.img.Bounds()

	// Horizontal strokes are clipped up front; centre lines span the canvas.
	if y0 == y1 {
		if y0 < b.Min.Y || y0 >= b.Max.Y {
			return
		}
		x0, x1 = min(x0, x1), max(x0, x1)
		x0, x1 = max(x0, b.Min.X), min(x1, b.Max.X-1)
		for x := x0; x <= x1; x++ {
			c.img.Set(x, y0, col)
		}
		return
	}

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		if (image.Point{X: x0, Y: y0}).In(b) {
			c.img.Set(x0, y0, col)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
