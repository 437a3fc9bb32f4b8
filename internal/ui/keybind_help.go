package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel(styles Styles) help.Model {
	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.ShortSeparator = styles.HelpDesc
	return h
}

// RenderHelpBar renders the one-line shortcut bar shown under the stack.
func RenderHelpBar(h *KeyHandler, styles Styles) string {
	if h == nil {
		return ""
	}
	return newHelpModel(styles).View(NewKeyMap(h))
}

// RenderKeybindHelp produces the transient menu shown after SPC. When the
// handler holds a partial sequence, the next-level keys are listed.
func RenderKeybindHelp(h *KeyHandler, styles Styles) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	bindings := NewKeyMap(h).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	content := styles.Muted.Render(h.CurrentSeq()) + " " + newHelpModel(styles).ShortHelpView(bindings)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Title.GetForeground()).
		Padding(0, 1).
		Render(content)
}
