package ui

import (
	"log"
	"time"

	"stackviz/internal/prefs"
	"stackviz/internal/session"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is the default Config.Clipboard.
func writeClipboard(s string) error {
	return clipboard.WriteAll(s)
}

// settleCmd schedules the reopening of the animation gate.
func (m *AppModel) settleCmd() tea.Cmd {
	if m.AnimationWindow <= 0 {
		m.Session.Settle()
		return nil
	}
	return tea.Tick(m.AnimationWindow, func(time.Time) tea.Msg { return settleMsg{} })
}

func (m *AppModel) toggleTheme() tea.Cmd {
	m.Theme = m.Theme.Toggle()
	m.Styles = NewStyles(m.Theme)
	if m.Prefs == nil {
		return nil
	}
	if err := m.Prefs.Save(prefs.Prefs{Theme: m.Theme}); err != nil {
		log.Printf("ui: save theme: %v", err)
		return m.Toasts.Push(session.Notice{
			Title: "Error",
			Body:  "Could not save theme preference",
			Level: session.LevelError,
		})
	}
	return nil
}

func (m *AppModel) copyArray() tea.Cmd {
	dump := ArrayDump(m.Session.Snapshot().Items)
	if dump == "" {
		return m.Toasts.Push(session.Notice{
			Title: "Empty Stack",
			Body:  "Nothing to copy",
			Level: session.LevelWarning,
		})
	}
	if err := m.Clipboard(dump); err != nil {
		log.Printf("ui: copy to clipboard: %v", err)
		return m.Toasts.Push(session.Notice{
			Title: "Error",
			Body:  "Clipboard unavailable",
			Level: session.LevelError,
		})
	}
	m.Session.Note("Copied array contents to clipboard")
	return m.Toasts.Push(session.Notice{
		Title: "Copied",
		Body:  dump,
		Level: session.LevelSuccess,
	})
}
