// Package tui runs the shooter in a Bubble Tea program.
// It maps keys to actions, drives the controller at a fixed rate and
// renders its screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the given rate.
// Rates below 1 fall back to 60 ticks per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate < 1 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
