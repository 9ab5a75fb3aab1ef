// Package signal provides demo waveforms that regenerate their samples on
// every Update, for exercising a view without decoding audio.
package signal

import (
	"math"
	"math/rand/v2"

	"github.com/go-audio/audio"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/olivier-w/wavedraw/internal/wave"
)

// Generator is a wave.Model whose contents change on Update.
type Generator interface {
	wave.Model
	Name() string
	Update()
}

type config struct {
	seed      uint64
	seeded    bool
	amplitude float64
	drift     float64
}

// Option configures a generator.
type Option func(*config)

// WithSeed makes noise generators deterministic.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithAmplitude scales every generator's output. The default is 1.
func WithAmplitude(a float64) Option {
	return func(c *config) { c.amplitude = a }
}

// WithDrift sets how far the sine phase moves per Update, in cycles.
func WithDrift(d float64) Option {
	return func(c *config) { c.drift = d }
}

func newConfig(opts []Option) config {
	c := config{amplitude: 1, drift: 0.0001}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c config) source() rand.Source {
	if c.seeded {
		return rand.NewPCG(c.seed, c.seed^0x9e3779b97f4a7c15)
	}
	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}

// Sine is a mono sine wave completing 64/2π cycles over its length.
type Sine struct {
	*wave.Buffer
	phase     float64
	drift     float64
	amplitude float64
}

// NewSine returns a sine wave of the given number of frames.
func NewSine(frames int, opts ...Option) *Sine {
	c := newConfig(opts)
	s := &Sine{
		Buffer:    wave.NewBuffer(1, frames),
		drift:     c.drift,
		amplitude: c.amplitude,
	}
	s.fill()
	return s
}

func (s *Sine) Name() string   { return "mono sine" }
func (s *Sine) String() string { return s.Name() }

// Update advances the phase and recomputes every frame.
func (s *Sine) Update() {
	s.phase = math.Mod(s.phase+s.drift, 1)
	s.fill()
}

func (s *Sine) fill() {
	data := s.Channel(0)
	n := float64(len(data))
	for i := range data {
		t := float64(i) / n * 64
		data[i] = math.Sin(2*math.Pi*s.phase + t)
	}
	scale(data, s.amplitude)
}

func scale(data []float64, amplitude float64) {
	if amplitude != 1 {
		f64.Scale(data, data, amplitude)
	}
}

// Noise is uniform white noise in [-0.5, 0.5) on one or more channels.
type Noise struct {
	*wave.Buffer
	name      string
	dist      distuv.Uniform
	amplitude float64
}

// NewMonoNoise returns single channel noise.
func NewMonoNoise(frames int, opts ...Option) *Noise {
	return newNoise("mono noise", 1, frames, opts)
}

// NewStereoNoise returns two independent channels of noise.
func NewStereoNoise(frames int, opts ...Option) *Noise {
	return newNoise("stereo noise", 2, frames, opts)
}

func newNoise(name string, channels, frames int, opts []Option) *Noise {
	c := newConfig(opts)
	n := &Noise{
		Buffer: wave.NewBuffer(channels, frames),
		name:      name,
		dist:      distuv.Uniform{Min: -0.5, Max: 0.5, Src: c.source()},
		amplitude: c.amplitude,
	}
	n.Update()
	return n
}

func (n *Noise) Name() string   { return n.name }
func (n *Noise) String() string { return n.name }

// Update draws fresh noise for every frame of every channel.
func (n *Noise) Update() {
	for c := range n.ChannelCount() {
		data := n.Channel(c)
		for i := range data {
			data[i] = n.dist.Rand()
		}
		scale(data, n.amplitude)
	}
}

const (
	chirpBitDepth   = 16
	chirpSampleRate = 44100
	chirpStartFreq  = 2.0  // cycles over the whole buffer
	chirpEndFreq    = 96.0 // cycles over the whole buffer
)

// Chirp is a linear frequency sweep synthesised as 16-bit PCM, the way a
// decoder would hand it over, and converted with wave.FromAudio.
type Chirp struct {
	*wave.Buffer
	pcm       *audio.IntBuffer
	phase     float64
	drift     float64
	amplitude float64
}

// NewChirp returns a mono chirp of the given number of frames.
func NewChirp(frames int, opts ...Option) *Chirp {
	c := newConfig(opts)
	ch := &Chirp{
		pcm: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: 1, SampleRate: chirpSampleRate},
			Data:           make([]int, max(frames, 0)),
			SourceBitDepth: chirpBitDepth,
		},
		drift:     c.drift,
		amplitude: c.amplitude,
	}
	ch.fill()
	return ch
}

func (c *Chirp) Name() string   { return "pcm chirp" }
func (c *Chirp) String() string { return c.Name() }

// Update advances the phase and resynthesises the PCM buffer.
func (c *Chirp) Update() {
	c.phase = math.Mod(c.phase+c.drift, 1)
	c.fill()
}

func (c *Chirp) fill() {
	const full = 1<<(chirpBitDepth-1) - 1
	n := float64(len(c.pcm.Data))
	for i := range c.pcm.Data {
		t := float64(i) / n
		cycles := chirpStartFreq*t + (chirpEndFreq-chirpStartFreq)*t*t/2
		c.pcm.Data[i] = int(math.Round(full * math.Sin(2*math.Pi*(c.phase+cycles))))
	}
	c.Buffer = wave.FromAudio(c.pcm)
	scale(c.Channel(0), c.amplitude)
}

// Demos returns the demo generators in selector order.
func Demos(frames int, opts ...Option) []Generator {
	return []Generator{
		NewSine(frames, opts...),
		NewMonoNoise(frames, opts...),
		NewStereoNoise(frames, opts...),
		NewChirp(frames, opts...),
	}
}
