package session

// Level is the style tag of a notification.
type Level string

const (
	LevelDefault Level = "default"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Cue is a transient visual cue the presentation layer plays once.
type Cue int

const (
	CueNone Cue = iota
	CueShake        // invalid action; shakes the block column
	CueGlow         // highlights the block at Effect.CueIndex
)

func (c Cue) String() string {
	switch c {
	case CueShake:
		return "shake"
	case CueGlow:
		return "glow"
	default:
		return "none"
	}
}

// Notice is a transient notification shown to the user.
type Notice struct {
	Title string
	Body  string
	Level Level
}

// Effect describes what the presentation layer must do after an action.
type Effect struct {
	Notice     *Notice
	Cue        Cue
	CueIndex   int  // block index for CueGlow
	Render     bool // stack state changed, redraw
	ClearInput bool // clear the input field that produced the action
	Animate    bool // the animation gate was closed; call Settle later
	Ignored    bool // dropped by the animation gate
}

func notice(title, body string, level Level) *Notice {
	return &Notice{Title: title, Body: body, Level: level}
}
