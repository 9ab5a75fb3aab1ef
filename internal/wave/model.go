// Package wave provides read access to sampled multi-channel waveforms and
// the inclusive frame ranges used to view them.
package wave

import (
	"math"
)

// Model exposes an underlying sampled waveform. Frames run along the time
// axis; each frame holds one sample per channel.
type Model interface {
	// FrameCount returns the number of sample frames.
	FrameCount() uint64
	// ChannelCount returns the number of channels. It is at least 1, even
	// for a model without frames.
	ChannelCount() int
	// Sample returns the sample at frame in channel. The error wraps
	// ErrOutOfRange when either index is outside the model.
	Sample(channel int, frame uint64) (float64, error)
	// SampleOrDefault is Sample with fallback returned for any index
	// outside the model.
	SampleOrDefault(channel int, frame uint64, fallback float64) float64
}

// SampleLerp reads the frames either side of a fractional frame position and
// linearly interpolates between them. Positions outside the model read as 0.
func SampleLerp(m Model, channel int, frame float64) float64 {
	if math.IsNaN(frame) || math.IsInf(frame, 0) {
		return 0
	}
	i0 := math.Floor(frame)
	t := frame - i0
	x0 := sampleAt(m, channel, i0)
	x1 := sampleAt(m, channel, i0+1)
	return x0*(1-t) + x1*t
}

func sampleAt(m Model, channel int, pos float64) float64 {
	if pos < 0 || pos >= float64(m.FrameCount()) {
		return 0
	}
	return m.SampleOrDefault(channel, uint64(pos), 0)
}

// MaxIndex returns the largest valid frame index of m, or 0 for a model
// without frames.
func MaxIndex(m Model) int64 {
	n := m.FrameCount()
	if n == 0 {
		return 0
	}
	if n-1 > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(n - 1)
}

type empty struct{}

// Empty is a model with no frames and a single channel. Views hold it until
// real data arrives.
var Empty Model = empty{}

func (empty) FrameCount() uint64 { return 0 }
func (empty) ChannelCount() int  { return 1 }

func (empty) Sample(channel int, frame uint64) (float64, error) {
	return 0, ErrOutOfRange
}

func (empty) SampleOrDefault(channel int, frame uint64, fallback float64) float64 {
	return fallback
}

func (empty) String() string { return "empty" }
