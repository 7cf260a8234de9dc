// Package tui provides the Bubble Tea integration for Water Sort.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one game step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at rate ticks per second. Rates below
// one tick per second are raised to one.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(rate, 1)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
