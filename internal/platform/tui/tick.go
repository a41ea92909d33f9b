// Package tui provides the Bubble Tea integration for the pocket
// console. It drives the cooperative loop from tick messages, maps
// terminal keys onto the wireless command bytes, and paints the
// framebuffer with half-block characters.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one iteration of the console loop.
type TickMsg time.Time

// tickCmd returns a command that sends tick messages at the poll rate.
func tickCmd(pollRate int) tea.Cmd {
	interval := time.Second / time.Duration(pollRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
