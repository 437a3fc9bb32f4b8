package ui

import (
	"time"

	"stackviz/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// CueDuration is how long a shake or glow cue stays on screen.
const CueDuration = 500 * time.Millisecond

type cueExpiredMsg struct {
	Cue session.Cue
	Gen int
}

// cueState tracks the active visual cues. Each cue carries a generation
// so an expiry timer from an earlier cue leaves a newer one alone.
type cueState struct {
	shaking   bool
	shakeGen  int
	glowIndex int // -1 when no block glows
	glowGen   int
}

func newCueState() cueState {
	return cueState{glowIndex: -1}
}

// play starts a cue and returns its expiry timer.
func (c *cueState) play(cue session.Cue, index int) tea.Cmd {
	var gen int
	switch cue {
	case session.CueShake:
		c.shakeGen++
		c.shaking = true
		gen = c.shakeGen
	case session.CueGlow:
		if index < 0 {
			return nil
		}
		c.glowGen++
		c.glowIndex = index
		gen = c.glowGen
	default:
		return nil
	}
	return tea.Tick(CueDuration, func(time.Time) tea.Msg {
		return cueExpiredMsg{Cue: cue, Gen: gen}
	})
}

func (c *cueState) expire(msg cueExpiredMsg) {
	switch msg.Cue {
	case session.CueShake:
		if msg.Gen == c.shakeGen {
			c.shaking = false
		}
	case session.CueGlow:
		if msg.Gen == c.glowGen {
			c.glowIndex = -1
		}
	}
}
