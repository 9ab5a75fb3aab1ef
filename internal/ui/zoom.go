package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// zoomSpring eases the visible interval toward a target interval.
type zoomSpring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newZoomSpring(interval int64) zoomSpring {
	return zoomSpring{
		spring: harmonica.NewSpring(harmonica.FPS(tickFPS), 8.0, 1.0),
		pos:    float64(interval),
		target: float64(interval),
	}
}

// jump moves to interval without animating.
func (z *zoomSpring) jump(interval int64) {
	z.pos = float64(interval)
	z.target = z.pos
	z.vel = 0
}

func (z *zoomSpring) settled() bool {
	return z.pos == z.target
}

// step advances one tick and returns the interval to show.
func (z *zoomSpring) step() int64 {
	if z.settled() {
		return int64(z.target)
	}
	z.pos, z.vel = z.spring.Update(z.pos, z.vel, z.target)
	if math.Abs(z.pos-z.target) < 0.5 && math.Abs(z.vel) < 1 {
		z.pos, z.vel = z.target, 0
	}
	return int64(math.Round(z.pos))
}
