// Package tui runs Bounce Shield in a terminal with Bubble Tea, locally or
// over SSH. It maps key presses to game actions, drives the tick loop and
// renders the cell screen with lipgloss.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. ID names the model
// whose loop scheduled it, so a stale loop cannot drive a newer game.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastLoopID atomic.Int64

// nextLoopID returns a fresh tick loop identifier.
func nextLoopID() int64 {
	return lastLoopID.Add(1)
}

// tickInterval returns the wall-clock duration of one tick.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
