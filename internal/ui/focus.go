package ui

// FocusArea identifies a focusable region of the screen.
type FocusArea string

const (
	FocusStack    FocusArea = "stack"    // keyboard shortcuts active
	FocusValue    FocusArea = "value"    // push value input
	FocusCapacity FocusArea = "capacity" // resize input
)

// IsInput reports whether the area is a text input. Single-key
// shortcuts are disabled while an input has focus.
func (f FocusArea) IsInput() bool {
	return f == FocusValue || f == FocusCapacity
}

// FocusManager tracks and rotates focus across areas.
type FocusManager struct {
	Current FocusArea
	Order   []FocusArea // tab order
}

// NewFocusManager starts on the stack panel.
func NewFocusManager() *FocusManager {
	return &FocusManager{
		Current: FocusStack,
		Order:   []FocusArea{FocusStack, FocusValue, FocusCapacity},
	}
}

func (f *FocusManager) indexOf(a FocusArea) int {
	for i, o := range f.Order {
		if o == a {
			return i
		}
	}
	return -1
}

// Next advances focus in tab order and returns the new area.
func (f *FocusManager) Next() FocusArea {
	if len(f.Order) == 0 {
		return f.Current
	}
	f.Current = f.Order[(f.indexOf(f.Current)+1)%len(f.Order)]
	return f.Current
}

// Prev moves focus backwards in tab order and returns the new area.
func (f *FocusManager) Prev() FocusArea {
	if len(f.Order) == 0 {
		return f.Current
	}
	i := f.indexOf(f.Current) - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	f.Current = f.Order[i]
	return f.Current
}

// SetFocus focuses a, returning false if a is not in the tab order.
func (f *FocusManager) SetFocus(a FocusArea) bool {
	if f.indexOf(a) < 0 {
		return false
	}
	f.Current = a
	return true
}
