// Package tui provides the Bubble Tea front-end of Helix Drop. It maps keys
// and mouse drag to game input, paces the simulation with wall-clock ticks
// and draws the tower as an unrolled ring view.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per render frame. It carries the wall-clock time the
// model derives the frame delta from.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
