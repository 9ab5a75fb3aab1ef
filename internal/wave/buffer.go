package wave

import (
	"fmt"

	"github.com/go-audio/audio"
)

// Buffer is a Model backed by one float64 slice per channel.
type Buffer struct {
	data   [][]float64
	frames int
}

// NewBuffer allocates a zeroed buffer. A channel count below 1 is raised to 1.
func NewBuffer(channels, frames int) *Buffer {
	channels = max(channels, 1)
	frames = max(frames, 0)
	data := make([][]float64, channels)
	for c := range data {
		data[c] = make([]float64, frames)
	}
	return &Buffer{data: data, frames: frames}
}

// BufferOf wraps existing channel slices without copying them.
func BufferOf(channels ...[]float64) (*Buffer, error) {
	if len(channels) == 0 {
		return NewBuffer(1, 0), nil
	}
	frames := len(channels[0])
	for c, ch := range channels[1:] {
		if len(ch) != frames {
			return nil, fmt.Errorf("channel %d has %d frames, want %d: %w", c+1, len(ch), frames, ErrChannelLength)
		}
	}
	return &Buffer{data: channels, frames: frames}, nil
}

// FromAudio de-interleaves a go-audio PCM buffer. Integer buffers are
// normalised to [-1, 1) by their source bit depth.
func FromAudio(buf audio.Buffer) *Buffer {
	if buf == nil || buf.PCMFormat() == nil {
		return NewBuffer(1, 0)
	}
	channels := max(buf.PCMFormat().NumChannels, 1)

	scale := 1.0
	if ib, ok := buf.(*audio.IntBuffer); ok && ib.SourceBitDepth > 0 {
		scale = 1 / float64(int64(1)<<(ib.SourceBitDepth-1))
	}

	fb := buf.AsFloatBuffer()
	frames := len(fb.Data) / channels
	out := NewBuffer(channels, frames)
	for i := range frames {
		for c := range channels {
			out.data[c][i] = fb.Data[i*channels+c] * scale
		}
	}
	return out
}

func (b *Buffer) FrameCount() uint64 { return uint64(b.frames) }
func (b *Buffer) ChannelCount() int  { return len(b.data) }

func (b *Buffer) Sample(channel int, frame uint64) (float64, error) {
	if channel < 0 || channel >= len(b.data) {
		return 0, fmt.Errorf("channel %d of %d: %w", channel, len(b.data), ErrOutOfRange)
	}
	if frame >= uint64(b.frames) {
		return 0, fmt.Errorf("frame %d of %d: %w", frame, b.frames, ErrOutOfRange)
	}
	return b.data[channel][frame], nil
}

func (b *Buffer) SampleOrDefault(channel int, frame uint64, fallback float64) float64 {
	if channel < 0 || channel >= len(b.data) || frame >= uint64(b.frames) {
		return fallback
	}
	return b.data[channel][frame]
}

// Channel returns the backing slice of channel c for in-place writes.
func (b *Buffer) Channel(c int) []float64 {
	return b.data[c]
}

// Set stores v at frame in channel. Out of range writes are ignored.
func (b *Buffer) Set(channel, frame int, v float64) {
	if channel < 0 || channel >= len(b.data) || frame < 0 || frame >= b.frames {
		return
	}
	b.data[channel][frame] = v
}
