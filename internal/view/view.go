// Package view holds the state behind an on-screen waveform: the model, the
// visible frame range, the render style and one drawable per channel.
//
// Callers mutate the view through its setters and then call Redraw; nothing
// is redrawn implicitly.
package view

import (
	"fmt"

	"github.com/olivier-w/wavedraw/internal/raster"
	"github.com/olivier-w/wavedraw/internal/render"
	"github.com/olivier-w/wavedraw/internal/wave"
)

// SurfaceFactory creates the drawing surface for one channel.
type SurfaceFactory func(channel, width, height int) render.Surface

// Option configures a View.
type Option func(*View)

// WithSurfaceFactory replaces the default raster.Canvas surfaces.
func WithSurfaceFactory(f SurfaceFactory) Option {
	return func(v *View) { v.factory = f }
}

// WithStyle sets the initial render style.
func WithStyle(s render.Style) Option {
	return func(v *View) { v.renderer.Style = s }
}

// WithPalette sets the initial palette.
func WithPalette(p render.Palette) Option {
	return func(v *View) { v.renderer.Palette = p }
}

// WithSize sets the initial size shared by all channels.
func WithSize(w, h int) Option {
	return func(v *View) { v.width, v.height = w, h }
}

// View is a waveform display over a wave.Model.
type View struct {
	model    wave.Model
	rng      wave.Range
	renderer render.Renderer
	channels []*Channel
	factory  SurfaceFactory
	width    int
	height   int
}

// New returns a view over wave.Empty with the range [0, 0].
func New(opts ...Option) *View {
	v := &View{
		renderer: render.New(),
		factory: func(_, w, h int) render.Surface {
			return raster.New(w, h)
		},
	}
	for _, opt := range opts {
		opt(v)
	}
	v.SetModel(wave.Empty)
	return v
}

// SetModel replaces the model. The range is clamped to the new model before
// the channel drawables are rebuilt. A nil model is replaced by wave.Empty.
func (v *View) SetModel(m wave.Model) {
	if m == nil {
		m = wave.Empty
	}
	v.model = m
	v.rng = v.rng.Clamp(m)

	n := max(m.ChannelCount(), 1)
	v.channels = make([]*Channel, n)
	for i := range v.channels {
		v.channels[i] = &Channel{index: i, view: v}
	}
	v.layout()
}

// Model returns the current model.
func (v *View) Model() wave.Model { return v.model }

// SetRange sets the visible frames. Bounds are reordered if needed, negative
// bounds become 0 and the result is clamped to the model.
func (v *View) SetRange(lower, upper int64) {
	v.rng = wave.NewRange(max(lower, 0), max(upper, 0)).Clamp(v.model)
}

// Range returns the visible frames.
func (v *View) Range() wave.Range { return v.rng }

func (v *View) SetStyle(s render.Style) { v.renderer.Style = s }
func (v *View) Style() render.Style     { return v.renderer.Style }

func (v *View) SetPalette(p render.Palette) { v.renderer.Palette = p }
func (v *View) Palette() render.Palette     { return v.renderer.Palette }

// Channels returns the per-channel drawables, indexed by channel number.
func (v *View) Channels() []*Channel { return v.channels }

// Size returns the size last given to Resize.
func (v *View) Size() (w, h int) { return v.width, v.height }

// Resize sets the total size of the view and gives every channel a fresh
// surface. Rows are split evenly between channels, the last ones taking any
// remainder.
func (v *View) Resize(w, h int) {
	v.width, v.height = max(w, 0), max(h, 0)
	v.layout()
}

func (v *View) layout() {
	n := len(v.channels)
	for i, ch := range v.channels {
		if v.factory == nil {
			ch.surface = nil
			continue
		}
		top := v.height * i / n
		bottom := v.height * (i + 1) / n
		ch.surface = v.factory(i, v.width, bottom-top)
	}
}

// Redraw draws every channel into its surface.
func (v *View) Redraw() error {
	for _, ch := range v.channels {
		if err := ch.Redraw(); err != nil {
			return err
		}
	}
	return nil
}

// Channel draws one channel of the view's model.
type Channel struct {
	index   int
	view    *View
	surface render.Surface
}

// Index returns the channel number.
func (c *Channel) Index() int { return c.index }

// Surface returns the surface the channel draws into.
func (c *Channel) Surface() render.Surface { return c.surface }

// Redraw draws the channel using the view's current model, range and style.
func (c *Channel) Redraw() error {
	if c.surface == nil {
		return nil
	}
	v := c.view
	if err := v.renderer.Draw(c.surface, v.model, c.index, v.rng); err != nil {
		return fmt.Errorf("channel %d: %w", c.index, err)
	}
	return nil
}
