package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	tickFPS      = 20
	tickInterval = time.Second / tickFPS
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
