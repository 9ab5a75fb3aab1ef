package wave

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Range is an inclusive frame index window, Lower <= Upper.
type Range struct {
	Lower int64
	Upper int64
}

// NewRange returns the range between two frame indices in either order.
func NewRange(lower, upper int64) Range {
	if lower > upper {
		lower, upper = upper, lower
	}
	return Range{Lower: lower, Upper: upper}
}

// Interval returns Upper - Lower.
func (r Range) Interval() int64 {
	return r.Upper - r.Lower
}

// Clamp fits r to the frames of m. A range starting past the last frame is
// reset to cover the whole model; otherwise only Upper moves.
func (r Range) Clamp(m Model) Range {
	maxIndex := MaxIndex(m)
	if r.Lower > maxIndex {
		return Range{Lower: 0, Upper: maxIndex}
	}
	if r.Upper > maxIndex {
		return Range{Lower: r.Lower, Upper: maxIndex}
	}
	return r
}

// Shift moves the window by delta frames, keeping its interval where the
// model allows it.
func (r Range) Shift(delta int64, m Model) Range {
	maxIndex := MaxIndex(m)
	interval := min(r.Interval(), maxIndex)
	lower := r.Lower + delta
	if lower+interval > maxIndex {
		lower = maxIndex - interval
	}
	lower = max(lower, 0)
	return Range{Lower: lower, Upper: lower + interval}
}

// Zoom resizes the window to interval frames, anchored at Lower unless that
// would run past the end of the model.
func (r Range) Zoom(interval int64, m Model) Range {
	maxIndex := MaxIndex(m)
	interval = min(max(interval, 0), maxIndex)
	lower := r.Lower
	if lower+interval > maxIndex {
		lower = maxIndex - interval
	}
	lower = max(lower, 0)
	return Range{Lower: lower, Upper: lower + interval}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Lower, r.Upper)
}

// Extent returns the smallest and largest sample of channel within r.
// Frames outside the model are skipped; an empty intersection yields 0, 0.
func Extent(m Model, channel int, r Range) (lo, hi float64) {
	r = r.Clamp(m)
	if m.FrameCount() == 0 || r.Upper < 0 {
		return 0, 0
	}
	start := max(r.Lower, 0)
	samples := make([]float64, 0, r.Upper-start+1)
	for i := start; i <= r.Upper; i++ {
		samples = append(samples, m.SampleOrDefault(channel, uint64(i), 0))
	}
	if len(samples) == 0 {
		return 0, 0
	}
	return floats.Min(samples), floats.Max(samples)
}
