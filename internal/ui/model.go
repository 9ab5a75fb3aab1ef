package ui

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/wavedraw/internal/raster"
	"github.com/olivier-w/wavedraw/internal/render"
	"github.com/olivier-w/wavedraw/internal/signal"
	"github.com/olivier-w/wavedraw/internal/util"
	"github.com/olivier-w/wavedraw/internal/view"
	"github.com/olivier-w/wavedraw/internal/visualizer"
	"github.com/olivier-w/wavedraw/internal/wave"
)

// chromeRows is the header, window bar and status line around the waveform.
const chromeRows = 3

// Model is the Bubbletea model for the wavedraw TUI.
type Model struct {
	view       *view.View
	generators []signal.Generator
	current    int
	encoder    *visualizer.Encoder
	zoom       zoomSpring
	keys       keyMap
	help       help.Model
	input      textinput.Model
	log        *slog.Logger

	prompting bool
	paused    bool
	quitting  bool
	width     int
	height    int
	rows      []string // encoded channels, top to bottom
	peakLo    float64  // channel 0 extent, refreshed by redraw
	peakHi    float64
	errMsg    string
}

// New creates a Model showing the first generator in v. The view keeps its
// range, clamped to the generator. A nil logger discards output.
func New(v *view.View, gens []signal.Generator, enc *visualizer.Encoder, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ti := textinput.New()
	ti.Prompt = "range> "
	ti.Placeholder = "lower:upper"
	ti.CharLimit = 41
	ti.Width = 30

	if len(gens) > 0 {
		v.SetModel(gens[0])
	}
	m := Model{
		view:       v,
		generators: gens,
		encoder:    enc,
		zoom:       newZoomSpring(v.Range().Interval()),
		keys:       newKeyMap(),
		help:       help.New(),
		input:      ti,
		log:        logger,
	}
	m.peakLo, m.peakHi = wave.Extent(v.Model(), 0, v.Range())
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.SetWindowTitle(m.windowTitle()))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			return m.handlePrompt(msg)
		}
		return m.handleKey(msg)

	case tickMsg:
		dirty := false
		if g := m.generator(); g != nil && !m.paused {
			g.Update()
			dirty = true
		}
		if !m.zoom.settled() {
			m.setInterval(m.zoom.step())
			dirty = true
		}
		if dirty {
			m.redraw()
		}
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		m.redraw()
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	case key.Matches(msg, m.keys.Left):
		m.scroll(-1)
	case key.Matches(msg, m.keys.Right):
		m.scroll(1)
	case key.Matches(msg, m.keys.ZoomIn):
		m.zoomBy(0.5)
	case key.Matches(msg, m.keys.ZoomOut):
		m.zoomBy(2)
	case key.Matches(msg, m.keys.Whole):
		m.view.SetRange(0, wave.MaxIndex(m.view.Model()))
		m.zoom.jump(m.view.Range().Interval())
	case key.Matches(msg, m.keys.GoTo):
		m.prompting = true
		m.errMsg = ""
		m.input.Focus()
		m.layout()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Style):
		m.view.SetStyle(m.view.Style().Next())
		m.log.Debug("style changed", "style", m.view.Style())
	case key.Matches(msg, m.keys.Density):
		m.encoder.Density = m.encoder.Density.Next()
		m.layout()
	case key.Matches(msg, m.keys.Signal):
		if len(m.generators) == 0 {
			return m, nil
		}
		m.current = (m.current + 1) % len(m.generators)
		m.view.SetModel(m.generators[m.current])
		m.zoom.jump(m.view.Range().Interval())
		m.layout()
		m.log.Debug("signal changed", "signal", m.generators[m.current].Name(), "range", m.view.Range())
		m.redraw()
		return m, tea.SetWindowTitle(m.windowTitle())
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, tea.SetWindowTitle(m.windowTitle())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	default:
		return m, nil
	}
	m.redraw()
	return m, nil
}

func (m Model) handlePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePrompt()
		return m, nil
	case tea.KeyEnter:
		text := m.input.Value()
		m.closePrompt()
		lower, upper, err := util.ParseRange(text)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.view.SetRange(lower, upper)
		m.zoom.jump(m.view.Range().Interval())
		m.log.Debug("range set", "input", text, "range", m.view.Range())
		m.redraw()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.input.Reset()
	m.input.Blur()
	m.layout()
}

func (m *Model) generator() signal.Generator {
	if len(m.generators) == 0 {
		return nil
	}
	return m.generators[m.current]
}

// scroll moves the window by an eighth of its width, at least one frame.
func (m *Model) scroll(dir int64) {
	r := m.view.Range()
	delta := max(r.Interval()/8, 1) * dir
	r = r.Shift(delta, m.view.Model())
	m.view.SetRange(r.Lower, r.Upper)
}

// zoomBy retargets the zoom spring. The interval never drops below two
// frames, since anything narrower draws nothing.
func (m *Model) zoomBy(factor float64) {
	maxIndex := wave.MaxIndex(m.view.Model())
	target := int64(math.Round(m.zoom.target * factor))
	target = min(max(target, 2), maxIndex)
	m.zoom.target = float64(target)
}

func (m *Model) setInterval(interval int64) {
	r := m.view.Range().Zoom(interval, m.view.Model())
	m.view.SetRange(r.Lower, r.Upper)
}

// layout sizes the view so every channel fills a whole number of terminal
// rows at the current density.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	n := max(m.view.Model().ChannelCount(), 1)
	free := m.height - chromeRows - lipgloss.Height(m.footer())
	rows := max(free/n, 1)
	w, h := m.encoder.Pixels(m.width, rows*n)
	m.view.Resize(w, h)
}

func (m *Model) redraw() {
	if err := m.view.Redraw(); err != nil {
		m.errMsg = err.Error()
		m.log.Error("redraw failed", "err", err, "range", m.view.Range())
	}
	bg := m.view.Palette().Background
	rows := make([]string, 0, len(m.view.Channels()))
	for _, ch := range m.view.Channels() {
		c, ok := ch.Surface().(*raster.Canvas)
		if !ok {
			continue
		}
		rows = append(rows, m.encoder.Encode(c.Image(), bg))
	}
	m.rows = rows
	m.peakLo, m.peakHi = wave.Extent(m.view.Model(), 0, m.view.Range())
}

func (m Model) footer() string {
	if m.prompting {
		return m.input.View()
	}
	return helpStyle.Render(m.help.View(m.keys))
}

func (m Model) windowTitle() string {
	title := "wavedraw"
	if g := m.generator(); g != nil {
		title += ": " + g.Name()
	}
	if m.paused {
		title += " (paused)"
	}
	return title
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	header := "wavedraw"
	if g := m.generator(); g != nil {
		header = g.Name()
	}
	b.WriteString(titleStyle.Render(header))
	if m.paused {
		b.WriteString("  " + pausedStyle.Render("paused"))
	}
	b.WriteByte('\n')

	for _, row := range m.rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}

	model := m.view.Model()
	r := m.view.Range()
	b.WriteString(barStyle.Render(renderWindowBar(r, model.FrameCount(), m.width)))
	b.WriteByte('\n')

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
	} else {
		b.WriteString(statusStyle.Render(m.status()))
	}
	b.WriteByte('\n')
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) status() string {
	model := m.view.Model()
	r := m.view.Range()
	w, _ := m.view.Size()
	density := render.Decide(r.Interval(), float64(w))
	return fmt.Sprintf("%s  %s/%s frames  %s  %s  %s  peak %s..%s",
		r,
		util.FormatCount(r.Interval()),
		util.FormatCount(int64(model.FrameCount())),
		density,
		m.view.Style(),
		m.encoder.Density,
		util.FormatSample(m.peakLo),
		util.FormatSample(m.peakHi),
	)
}
