package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/wavedraw/internal/signal"
	"github.com/olivier-w/wavedraw/internal/ui"
	"github.com/olivier-w/wavedraw/internal/view"
	"github.com/olivier-w/wavedraw/internal/visualizer"
	"github.com/olivier-w/wavedraw/internal/wave"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	logger, cleanup, err := newLogger(cfg.logLevel, cfg.logFile)
	if err != nil {
		return err
	}
	defer cleanup()

	gens, err := buildSignals(cfg)
	if err != nil {
		return err
	}

	v := view.New(view.WithStyle(cfg.style), view.WithPalette(cfg.palette))
	v.SetModel(gens[0])
	if cfg.hasRange {
		v.SetRange(cfg.lower, cfg.upper)
	} else {
		v.SetRange(0, wave.MaxIndex(gens[0]))
	}
	logger.Info("starting",
		"signal", gens[0].Name(),
		"frames", cfg.frames,
		"amplitude", cfg.amplitude,
		"range", v.Range(),
		"style", cfg.style,
		"density", cfg.density,
	)

	if cfg.png != "" {
		v.Resize(cfg.width, cfg.height)
		if err := writeSnapshot(v, cfg.png); err != nil {
			return err
		}
		logger.Info("snapshot written", "path", cfg.png)
		return nil
	}

	m := ui.New(v, gens, visualizer.NewEncoder(cfg.density), logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// buildSignals creates the demo generators at the configured gain, starting
// with the one named by -signal.
func buildSignals(cfg config) ([]signal.Generator, error) {
	return selectSignal(signal.Demos(cfg.frames, signal.WithAmplitude(cfg.amplitude)), cfg.signal)
}

// selectSignal rotates gens so the named generator comes first, keeping the
// cycling order of the rest.
func selectSignal(gens []signal.Generator, name string) ([]signal.Generator, error) {
	if name == "" {
		return gens, nil
	}
	for i, g := range gens {
		if g.Name() == name {
			return slices.Concat(gens[i:], gens[:i]), nil
		}
	}
	return nil, fmt.Errorf("unknown signal %q", name)
}
