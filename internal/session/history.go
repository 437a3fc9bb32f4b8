package session

import "time"

// MaxHistory bounds the number of history entries kept.
const MaxHistory = 100

// Entry is one line of the operation history.
type Entry struct {
	Time    time.Time
	Message string
	Level   Level
}

// History is a bounded log of last-operation messages, oldest first.
type History struct {
	entries []Entry
	max     int
}

func newHistory(max int) *History {
	if max <= 0 {
		max = MaxHistory
	}
	return &History{entries: make([]Entry, 0, max), max: max}
}

func (h *History) add(e Entry) {
	h.entries = append(h.entries, e)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
}

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}
