package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a self-contained region (overlay, panel) with Elm-style
// Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
