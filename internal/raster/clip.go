package raster

import (
	"math"

	"github.com/olivier-w/wavedraw/internal/render"
)

// box is a clip rectangle in canvas coordinates, one pixel larger than the
// image on every side so rounding never pulls an edge inside.
type box struct {
	minX, minY, maxX, maxY float64
}

func (c *Canvas) clipBox() box {
	b := c.img.Bounds()
	return box{
		minX: float64(b.Min.X - 1),
		minY: float64(b.Min.Y - 1),
		maxX: float64(b.Max.X + 1),
		maxY: float64(b.Max.Y + 1),
	}
}

func (r box) clampX(x float64) float64 { return min(max(x, r.minX), r.maxX) }
func (r box) clampY(y float64) float64 { return min(max(y, r.minY), r.maxY) }

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// clipSegment clips a segment to r (Liang-Barsky). ok is false when no part
// of the segment lies inside.
func clipSegment(x0, y0, x1, y1 float64, r box) (cx0, cy0, cx1, cy1 float64, ok bool) {
	if !finite(x0, y0, x1, y1) {
		return 0, 0, 0, 0, false
	}
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - r.minX},
		{dx, r.maxX - x0},
		{-dy, y0 - r.minY},
		{dy, r.maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, t)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// clipPolygon clips pts to r (Sutherland-Hodgman). The result may be empty.
func clipPolygon(pts []render.Point, r box) []render.Point {
	inside := [4]func(render.Point) bool{
		func(p render.Point) bool { return p.X >= r.minX },
		func(p render.Point) bool { return p.X <= r.maxX },
		func(p render.Point) bool { return p.Y >= r.minY },
		func(p render.Point) bool { return p.Y <= r.maxY },
	}
	cross := [4]func(a, b render.Point) render.Point{
		func(a, b render.Point) render.Point { return atX(a, b, r.minX) },
		func(a, b render.Point) render.Point { return atX(a, b, r.maxX) },
		func(a, b render.Point) render.Point { return atY(a, b, r.minY) },
		func(a, b render.Point) render.Point { return atY(a, b, r.maxY) },
	}

	out := pts
	for e := range inside {
		in := out
		out = make([]render.Point, 0, len(in)+2)
		for i, cur := range in {
			prev := in[(i+len(in)-1)%len(in)]
			switch {
			case inside[e](cur):
				if !inside[e](prev) {
					out = append(out, cross[e](prev, cur))
				}
				out = append(out, cur)
			case inside[e](prev):
				out = append(out, cross[e](prev, cur))
			}
		}
		if len(out) == 0 {
			return nil
		}
	}
	return out
}

func atX(a, b render.Point, x float64) render.Point {
	t := (x - a.X) / (b.X - a.X)
	return render.Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func atY(a, b render.Point, y float64) render.Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return render.Point{X: a.X + t*(b.X-a.X), Y: y}
}
