// Package tui runs 2048 as a full-screen Bubble Tea program.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeTimeout is how long a transient notice stays on screen.
const noticeTimeout = 1500 * time.Millisecond

// clearNoticeMsg hides the notice with the matching sequence number.
type clearNoticeMsg struct {
	seq int
}

// clearNoticeCmd schedules removal of notice seq.
func clearNoticeCmd(seq int) tea.Cmd {
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}
