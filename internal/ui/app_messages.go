package ui

// PushMsg pushes the value input's contents (Enter in the value input).
type PushMsg struct{}

// PopMsg pops the top value (p).
type PopMsg struct{}

// PeekMsg shows the top value and highlights its block (k).
type PeekMsg struct{}

// ClearMsg empties the stack (c).
type ClearMsg struct{}

// ResizeMsg resizes to the capacity input's contents (Enter in the capacity input).
type ResizeMsg struct{}

// RandomizeMsg refills the stack with random symbols (SPC r).
type RandomizeMsg struct{}

// DisplayAllMsg lists every item with its index (SPC a).
type DisplayAllMsg struct{}

// ToggleThemeMsg switches between light and dark and persists the choice (SPC t).
type ToggleThemeMsg struct{}

// ShowHistoryMsg opens the operation history overlay (SPC h).
type ShowHistoryMsg struct{}

// CopyArrayMsg copies the array dump to the system clipboard (SPC y).
type CopyArrayMsg struct{}

// FocusMsg moves focus to an area (i, s).
type FocusMsg struct {
	Area FocusArea
}

// DismissOverlayMsg closes the topmost overlay.
type DismissOverlayMsg struct{}

// settleMsg reopens the animation gate once the animation window passes.
type settleMsg struct{}
