// Package render draws one channel of a wave.Model onto a Surface.
//
// When the visible range holds more frames than the surface has pixel
// columns the channel is drawn collapsed: every column shows the min/max
// envelope of the frames it covers. Otherwise it is drawn expanded, with each
// frame spread over one or more columns in the selected Style.
package render

import (
	"fmt"
	"math"

	"github.com/olivier-w/wavedraw/internal/wave"
)

// Density is the outcome of comparing the visible frames to the surface width.
type Density int

const (
	// Blank ranges span at most one frame and draw nothing but background.
	Blank Density = iota
	// Collapsed maps several frames onto each pixel column.
	Collapsed
	// Expanded spreads each frame over one or more pixel columns.
	Expanded
)

func (d Density) String() string {
	switch d {
	case Collapsed:
		return "collapsed"
	case Expanded:
		return "expanded"
	default:
		return "blank"
	}
}

// Decide picks the density for interval frames drawn across width units.
func Decide(interval int64, width float64) Density {
	switch {
	case interval <= 1:
		return Blank
	case float64(interval) > width:
		return Collapsed
	default:
		return Expanded
	}
}

// Renderer draws a channel with a given style and palette.
type Renderer struct {
	Style   Style
	Palette Palette
}

// New returns a renderer using linear interpolation and the default palette.
func New() Renderer {
	return Renderer{Style: LinearInterpolation, Palette: DefaultPalette()}
}

// Draw fills s with the background and then draws channel of m over the
// frames in r. The model is only read.
func (rd Renderer) Draw(s Surface, m wave.Model, channel int, r wave.Range) error {
	w, h := s.Size()
	s.SetFill(rd.Palette.Background)
	s.FillRect(0, 0, w, h)

	switch Decide(r.Interval(), w) {
	case Collapsed:
		return rd.drawCollapsed(s, m, channel, r)
	case Expanded:
		return rd.drawExpanded(s, m, channel, r)
	}
	return nil
}

func (rd Renderer) drawCollapsed(s Surface, m wave.Model, channel int, r wave.Range) error {
	w, h := s.Size()
	interval := r.Interval()
	if !(float64(interval) > w) {
		return fmt.Errorf("collapsed draw of %d frames over width %g: %w", interval, w, ErrInvariant)
	}
	framesPerPixel := float64(interval) / w
	if !(framesPerPixel >= 1) {
		return fmt.Errorf("frames per pixel %g below 1: %w", framesPerPixel, ErrInvariant)
	}

	halfHeight := h / 2
	s.Save()
	defer s.Restore()
	s.Translate(0, halfHeight)

	s.SetStroke(rd.Palette.CenterLine)
	s.StrokeLine(0, 0, w, 0)
	s.SetFill(rd.Palette.CollapsedFill)

	lower := float64(r.Lower)
	for x := 0; float64(x) < w; x++ {
		frame := lower + float64(x)*framesPerPixel

		// Seeded at zero so the bands always start from the centre line.
		var sampleMax, sampleMin float64
		for k := 0.0; k <= framesPerPixel; k++ {
			v := wave.SampleLerp(m, channel, frame+k)
			sampleMax = max(sampleMax, v)
			sampleMin = min(sampleMin, v)
		}

		yTop := sampleMax * -halfHeight
		yBottom := sampleMin * halfHeight
		s.FillRect(float64(x), yTop, 1, math.Abs(yTop))
		s.FillRect(float64(x), 0, 1, math.Abs(yBottom))
	}
	return nil
}

func (rd Renderer) drawExpanded(s Surface, m wave.Model, channel int, r wave.Range) error {
	w, _ := s.Size()
	interval := r.Interval()
	if float64(interval) > w {
		return fmt.Errorf("expanded draw of %d frames over width %g: %w", interval, w, ErrInvariant)
	}
	pixelsPerFrame := w / float64(interval)
	if !(pixelsPerFrame >= 1) {
		return fmt.Errorf("pixels per frame %g below 1: %w", pixelsPerFrame, ErrInvariant)
	}

	switch rd.Style {
	case Boxes:
		rd.drawBoxes(s, m, channel, r, pixelsPerFrame)
	default:
		rd.drawLinear(s, m, channel, r, pixelsPerFrame)
	}
	return nil
}

// beginExpanded moves the origin to the centre line and draws it. The caller
// must Restore the surface.
func (rd Renderer) beginExpanded(s Surface) (w, halfHeight float64) {
	w, h := s.Size()
	halfHeight = h / 2
	s.Save()
	s.Translate(0, halfHeight)

	s.SetStroke(rd.Palette.CenterLine)
	s.StrokeLine(0, 0, w, 0)
	s.SetStroke(rd.Palette.ExpandedStroke)
	s.SetFill(rd.Palette.ExpandedFill)
	return w, halfHeight
}

func (rd Renderer) drawBoxes(s Surface, m wave.Model, channel int, r wave.Range, pixelsPerFrame float64) {
	w, halfHeight := rd.beginExpanded(s)
	defer s.Restore()

	for x := 0.0; x < w; x += pixelsPerFrame {
		frame := frameAt(r, x/w)
		v := wave.SampleLerp(m, channel, frame)
		height := math.Abs(v * halfHeight)
		y := 0.0
		if v > 0 {
			y = v * -halfHeight
		}
		s.FillRect(x, y, pixelsPerFrame, height)
		s.StrokeRect(x, y, pixelsPerFrame, height)
	}
}

func (rd Renderer) drawLinear(s Surface, m wave.Model, channel int, r wave.Range, pixelsPerFrame float64) {
	w, halfHeight := rd.beginExpanded(s)
	defer s.Restore()

	quad := make([]Point, 4)
	for x := 0.0; x < w; x += pixelsPerFrame {
		frame := frameAt(r, x/w)
		s0 := sampleOrZero(m, channel, math.Floor(frame))
		s1 := sampleOrZero(m, channel, math.Ceil(frame))

		quad[0] = Point{X: x, Y: 0}
		quad[1] = Point{X: x, Y: s0 * -halfHeight}
		quad[2] = Point{X: x + pixelsPerFrame, Y: s1 * -halfHeight}
		quad[3] = Point{X: x + pixelsPerFrame, Y: 0}
		s.FillPolygon(quad)
		s.StrokePolygon(quad)
	}
}

// frameAt interpolates across the whole range, position 0 being Lower and 1
// being Upper.
func frameAt(r wave.Range, position float64) float64 {
	return float64(r.Lower)*(1-position) + float64(r.Upper)*position
}

func sampleOrZero(m wave.Model, channel int, frame float64) float64 {
	if frame < 0 {
		return 0
	}
	return m.SampleOrDefault(channel, uint64(frame), 0)
}
