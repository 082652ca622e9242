// Package tui provides the Bubble Tea integration: the terminal frame loop,
// input mapping, world-to-screen rendering, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of one frame. The model derives the
// frame delta from consecutive TickMsg times rather than assuming the nominal
// interval, so the simulation's accumulator absorbs any scheduling jitter.
type TickMsg time.Time

// tickCmd arms the next frame at the configured rate. Bubble Tea delivers the
// tick only after the previous Update has returned, so a slow terminal drops
// frames instead of queueing them.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
