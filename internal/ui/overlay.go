package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a popup view drawn over the main screen. The topmost
// overlay receives all key input.
type Overlay struct {
	View    View
	Dismiss string // key that closes it (e.g. "esc")
}

// OverlayStack holds open overlays, topmost last.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens an overlay on top.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop closes the topmost overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the topmost overlay.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop routes msg to the topmost overlay. A dismiss key closes it
// without reaching the overlay's view.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	if k, ok := msg.(tea.KeyMsg); ok && top.Dismiss != "" && k.String() == top.Dismiss {
		s.Pop()
		return nil, true
	}
	v, cmd := top.View.Update(msg)
	top.View = v
	return cmd, true
}
