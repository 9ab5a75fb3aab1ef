package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/olivier-w/wavedraw/internal/render"
	"github.com/olivier-w/wavedraw/internal/util"
	"github.com/olivier-w/wavedraw/internal/visualizer"
)

type config struct {
	style     render.Style
	density   visualizer.Density
	palette   render.Palette
	signal    string
	frames    int
	amplitude float64
	lower     int64
	upper     int64
	hasRange  bool

	png    string
	width  int
	height int

	logLevel string
	logFile  string
}

// paletteFlags maps command line flags onto render.Palette entries.
var paletteFlags = []struct{ flag, entry, usage string }{
	{"bg", "background", "background colour (#rrggbb)"},
	{"center", "center-line", "centre line colour"},
	{"fill", "expanded-fill", "sample fill colour when zoomed in"},
	{"stroke", "expanded-stroke", "sample outline colour when zoomed in"},
	{"collapsed", "collapsed-fill", "envelope colour when zoomed out"},
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("wavedraw", flag.ContinueOnError)
	fs.SetOutput(stderr)

	style := fs.String("style", "linear", "expanded style: linear or boxes")
	density := fs.String("density", "braille", "terminal density: braille, halfblock or ascii")
	signal := fs.String("signal", "mono sine", "starting signal: mono sine, mono noise, stereo noise or pcm chirp")
	frames := fs.Int("frames", 8192, "frames per demo signal")
	amplitude := fs.Float64("amplitude", 1, "gain applied to every demo signal")
	rng := fs.String("range", "", "visible frames as lower:upper (default whole signal)")
	png := fs.String("png", "", "write one snapshot to this PNG file and exit")
	width := fs.Int("width", 1200, "snapshot width in pixels")
	height := fs.Int("height", 400, "snapshot height in pixels")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn or error")
	logFile := fs.String("log-file", "", "write logs to this file")

	colors := make([]*string, len(paletteFlags))
	for i, pf := range paletteFlags {
		colors[i] = fs.String(pf.flag, "", pf.usage)
	}

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := config{
		signal:    strings.ToLower(strings.TrimSpace(*signal)),
		frames:    *frames,
		amplitude: *amplitude,
		png:       *png,
		width:     *width,
		height:    *height,
		logLevel:  *logLevel,
		logFile:   *logFile,
		palette:   render.DefaultPalette(),
	}
	if cfg.frames < 0 {
		return config{}, fmt.Errorf("-frames must not be negative, got %d", cfg.frames)
	}
	if math.IsNaN(cfg.amplitude) || math.IsInf(cfg.amplitude, 0) {
		return config{}, fmt.Errorf("-amplitude must be finite, got %g", cfg.amplitude)
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return config{}, fmt.Errorf("snapshot size must be positive, got %dx%d", cfg.width, cfg.height)
	}

	var err error
	if cfg.style, err = render.ParseStyle(*style); err != nil {
		return config{}, err
	}
	if cfg.density, err = visualizer.ParseDensity(*density); err != nil {
		return config{}, err
	}
	if *rng != "" {
		if cfg.lower, cfg.upper, err = util.ParseRange(*rng); err != nil {
			return config{}, err
		}
		cfg.hasRange = true
	}
	for i, pf := range paletteFlags {
		if *colors[i] == "" {
			continue
		}
		if cfg.palette, err = cfg.palette.With(pf.entry, *colors[i]); err != nil {
			return config{}, fmt.Errorf("-%s: %w", pf.flag, err)
		}
	}
	if _, err := ResolveLogLevel(cfg.logLevel); err != nil {
		return config{}, err
	}
	return cfg, nil
}
