package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastExpiredMsg removes the toast with the matching sequence number.
type ToastExpiredMsg struct {
	Seq int
}

// Toast is a transient notification. Showing a new message replaces the
// current one, and only the newest expiry can dismiss it.
type Toast struct {
	message  string
	seq      int
	duration time.Duration
}

// NewToast creates an empty toast with the given lifetime.
func NewToast(duration time.Duration) *Toast {
	return &Toast{duration: duration}
}

// Show displays message and returns the command that will expire it.
func (t *Toast) Show(message string) tea.Cmd {
	t.seq++
	t.message = message
	seq := t.seq
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}

// Expire hides the toast if msg belongs to the message on screen.
func (t *Toast) Expire(msg ToastExpiredMsg) {
	if msg.Seq == t.seq {
		t.message = ""
	}
}

// Visible reports whether a message is on screen.
func (t *Toast) Visible() bool { return t.message != "" }

// Message returns the message on screen, if any.
func (t *Toast) Message() string { return t.message }

// View renders the toast, or nothing when hidden.
func (t *Toast) View(s Styles) string {
	if !t.Visible() {
		return ""
	}
	return s.Toast.Render(t.Message())
}
