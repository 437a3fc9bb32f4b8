package ui

import (
	"fmt"
	"strings"

	"stackviz/internal/session"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HistoryWindow lists past operations with scrollback. Shown as an
// overlay; Esc (the overlay's dismiss key) or q closes it.
type HistoryWindow struct {
	entries  []session.Entry
	viewport viewport.Model
	styles   Styles
}

// Ensure HistoryWindow implements View.
var _ View = (*HistoryWindow)(nil)

const (
	defaultHistoryWidth  = 70
	defaultHistoryHeight = 16
)

// NewHistoryWindow creates a window over a copy of entries.
func NewHistoryWindow(entries []session.Entry, styles Styles) *HistoryWindow {
	vp := viewport.New(defaultHistoryWidth, defaultHistoryHeight)
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Section.GetForeground()).
		Padding(0, 1)
	h := &HistoryWindow{
		entries:  entries,
		viewport: vp,
		styles:   styles,
	}
	h.refreshContent()
	return h
}

// Init implements View.
func (h *HistoryWindow) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (h *HistoryWindow) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" {
			return h, func() tea.Msg { return DismissOverlayMsg{} }
		}
	case tea.WindowSizeMsg:
		w := msg.Width - 4
		ht := msg.Height - 8
		if w < 40 {
			w = 40
		}
		if ht < 6 {
			ht = 6
		}
		h.viewport.Width = w
		h.viewport.Height = ht
		h.refreshContent()
		return h, nil
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements View.
func (h *HistoryWindow) View() string {
	header := h.styles.Title.Render(fmt.Sprintf("History (%d)", len(h.entries))) +
		h.styles.Hint.Render("  ↑/↓: scroll  Esc: close")
	return header + "\n" + h.viewport.View()
}

func (h *HistoryWindow) refreshContent() {
	lines := make([]string, 0, len(h.entries))
	for _, e := range h.entries {
		ts := e.Time.Format("15:04:05")
		lines = append(lines, fmt.Sprintf("[%s] %s %s", ts, levelIcon(e.Level), e.Message))
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = h.styles.Muted.Render("No operations yet.")
	}
	h.viewport.SetContent(content)
	h.viewport.GotoBottom()
}

func levelIcon(l session.Level) string {
	switch l {
	case session.LevelSuccess:
		return "✓"
	case session.LevelWarning:
		return "!"
	case session.LevelError:
		return "✗"
	default:
		return "•"
	}
}
