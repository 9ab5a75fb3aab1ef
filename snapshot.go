package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/olivier-w/wavedraw/internal/raster"
	"github.com/olivier-w/wavedraw/internal/view"
)

// composite stacks the channel canvases of v top to bottom.
func composite(v *view.View) (*image.RGBA, error) {
	w, h := v.Size()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	y := 0
	for _, ch := range v.Channels() {
		c, ok := ch.Surface().(*raster.Canvas)
		if !ok {
			return nil, fmt.Errorf("channel %d: surface is %T, not a raster canvas", ch.Index(), ch.Surface())
		}
		src := c.Image()
		r := src.Bounds().Add(image.Pt(0, y))
		draw.Draw(out, r, src, src.Bounds().Min, draw.Src)
		y += src.Bounds().Dy()
	}
	return out, nil
}

func writeSnapshot(v *view.View, path string) error {
	if err := v.Redraw(); err != nil {
		return fmt.Errorf("drawing snapshot: %w", err)
	}
	img, err := composite(v)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
