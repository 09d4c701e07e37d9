// Package tui runs a sling puck table in a terminal with Bubble Tea.
// The mouse is the only pointer; each terminal cell covers a fixed patch of
// arena units so tuning carries over from the window driver.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per display frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
