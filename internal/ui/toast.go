package ui

import (
	"strings"
	"time"

	"stackviz/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// ToastVisible is how long a toast stays fully visible.
	ToastVisible = 3 * time.Second
	// ToastExit is the length of the exit transition before removal.
	ToastExit = 300 * time.Millisecond
	// MaxToasts caps the number of toasts on screen; the oldest go first.
	MaxToasts = 4

	toastWidth = 34
)

// Toast is one on-screen notification.
type Toast struct {
	ID      int
	Notice  session.Notice
	Leaving bool // in the exit transition
}

type toastExpireMsg struct{ ID int }

type toastRemoveMsg struct{ ID int }

// ToastStack holds the visible notifications, oldest first.
type ToastStack struct {
	toasts  []Toast
	nextID  int
	Visible time.Duration
	Exit    time.Duration
}

// NewToastStack creates an empty stack with the default timings.
func NewToastStack() *ToastStack {
	return &ToastStack{Visible: ToastVisible, Exit: ToastExit}
}

// Push shows a notice and returns the timer that starts its exit.
func (s *ToastStack) Push(n session.Notice) tea.Cmd {
	s.nextID++
	id := s.nextID
	s.toasts = append(s.toasts, Toast{ID: id, Notice: n})
	if len(s.toasts) > MaxToasts {
		s.toasts = s.toasts[len(s.toasts)-MaxToasts:]
	}
	return tea.Tick(s.Visible, func(time.Time) tea.Msg {
		return toastExpireMsg{ID: id}
	})
}

// Update handles toast timer messages. Returns handled=false for other messages.
func (s *ToastStack) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case toastExpireMsg:
		for i := range s.toasts {
			if s.toasts[i].ID == msg.ID {
				s.toasts[i].Leaving = true
				return tea.Tick(s.Exit, func(time.Time) tea.Msg {
					return toastRemoveMsg{ID: msg.ID}
				}), true
			}
		}
		return nil, true
	case toastRemoveMsg:
		for i := range s.toasts {
			if s.toasts[i].ID == msg.ID {
				s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
				break
			}
		}
		return nil, true
	}
	return nil, false
}

// Toasts returns the visible toasts, oldest first.
func (s *ToastStack) Toasts() []Toast {
	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// Len returns the number of visible toasts.
func (s *ToastStack) Len() int {
	return len(s.toasts)
}

// View renders the toasts newest on top.
func (s *ToastStack) View(styles Styles) string {
	if len(s.toasts) == 0 {
		return ""
	}
	var parts []string
	for i := len(s.toasts) - 1; i >= 0; i-- {
		t := s.toasts[i]
		title := styles.ToastTitle(t.Notice.Level).Render(t.Notice.Title)
		body := t.Notice.Body
		box := styles.ToastBox(t.Notice.Level)
		if t.Leaving {
			title = styles.Muted.Render(t.Notice.Title)
			body = styles.Muted.Render(body)
			box = box.BorderForeground(styles.Muted.GetForeground())
		}
		parts = append(parts, box.Render(title+"\n"+body))
	}
	return strings.Join(parts, "\n")
}
