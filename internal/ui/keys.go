package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Whole   key.Binding
	GoTo    key.Binding
	Style   key.Binding
	Density key.Binding
	Signal  key.Binding
	Pause   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "scroll left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "scroll right"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "=", "up", "k"),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_", "down", "j"),
			key.WithHelp("-", "zoom out"),
		),
		Whole: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "whole signal"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to range"),
		),
		Style: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "style"),
		),
		Density: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "density"),
		),
		Signal: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "next signal"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.ZoomIn, k.ZoomOut, k.Signal, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.ZoomIn, k.ZoomOut},
		{k.Whole, k.GoTo, k.Style, k.Density},
		{k.Signal, k.Pause, k.Help, k.Quit},
	}
}
