package ui

import (
	"context"
	"strings"
	"time"
	"unicode"

	"stackviz/internal/prefs"
	"stackviz/internal/session"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultAnimationWindow is how long mutating actions stay gated after one runs.
const DefaultAnimationWindow = 150 * time.Millisecond

// Config holds the dependencies of the root model.
type Config struct {
	Session *session.Session
	Prefs   *prefs.Store // nil: theme changes are not persisted
	Theme   prefs.Theme
	// AnimationWindow gates push/pop/clear/resize/randomize after each
	// one. Zero reopens the gate immediately.
	AnimationWindow time.Duration
	Clipboard       func(string) error // nil: atotto/clipboard
	Context         context.Context    // parent for operation spans
}

// AppModel is the root model. It owns the session and re-renders the
// stack from a snapshot taken whenever an action changes it.
type AppModel struct {
	Session    *session.Session
	Prefs      *prefs.Store
	Theme      prefs.Theme
	Styles     Styles
	KeyHandler *KeyHandler
	Focus      *FocusManager
	Toasts     *ToastStack
	Overlays   OverlayStack

	AnimationWindow time.Duration
	Clipboard       func(string) error

	ctx           context.Context
	valueInput    textinput.Model
	capacityInput textinput.Model
	cues          cueState
	snapshot      session.Snapshot
	width         int
	height        int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model from cfg.
func NewAppModel(cfg Config) *AppModel {
	s := cfg.Session
	if s == nil {
		s = session.New()
	}
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	clip := cfg.Clipboard
	if clip == nil {
		clip = writeClipboard
	}
	theme := cfg.Theme
	if theme != prefs.ThemeDark {
		theme = prefs.ThemeLight
	}

	valueInput := textinput.New()
	valueInput.Placeholder = "value to push"
	valueInput.Prompt = "Value: "
	valueInput.CharLimit = 0
	valueInput.Width = 20

	capacityInput := textinput.New()
	capacityInput.Placeholder = "1-20"
	capacityInput.Prompt = "Capacity: "
	capacityInput.CharLimit = 0
	capacityInput.Width = 6

	m := &AppModel{
		Session:         s,
		Prefs:           cfg.Prefs,
		Theme:           theme,
		Styles:          NewStyles(theme),
		KeyHandler:      NewKeyHandler(newRegistry()),
		Focus:           NewFocusManager(),
		Toasts:          NewToastStack(),
		AnimationWindow: cfg.AnimationWindow,
		Clipboard:       clip,
		ctx:             ctx,
		valueInput:      valueInput,
		capacityInput:   capacityInput,
		cues:            newCueState(),
	}
	m.render()
	s.Note("Application initialized")
	return m
}

func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("p", func() tea.Msg { return PopMsg{} }, "pop")
	reg.BindWithDesc("k", func() tea.Msg { return PeekMsg{} }, "peek")
	reg.BindWithDesc("c", func() tea.Msg { return ClearMsg{} }, "clear")
	reg.BindWithDesc("i", func() tea.Msg { return FocusMsg{Area: FocusValue} }, "push…")
	reg.BindWithDesc("s", func() tea.Msg { return FocusMsg{Area: FocusCapacity} }, "resize…")
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDesc("SPC r", func() tea.Msg { return RandomizeMsg{} }, "Randomize")
	reg.BindWithDesc("SPC a", func() tea.Msg { return DisplayAllMsg{} }, "Display all")
	reg.BindWithDesc("SPC t", func() tea.Msg { return ToggleThemeMsg{} }, "Toggle theme")
	reg.BindWithDesc("SPC h", func() tea.Msg { return ShowHistoryMsg{} }, "History")
	reg.BindWithDesc("SPC y", func() tea.Msg { return CopyArrayMsg{} }, "Copy array")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Snapshot returns the state the stack was last rendered from.
func (m *AppModel) Snapshot() session.Snapshot {
	return m.snapshot
}

// render takes a fresh snapshot of the session. Every redraw of the
// block column is derived from this snapshot alone.
func (m *AppModel) render() {
	m.snapshot = m.Session.Snapshot()
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := a.Toasts.Update(msg); ok {
		return a, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.Overlays.Len() > 0 {
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		return a, nil
	case settleMsg:
		a.Session.Settle()
		return a, nil
	case cueExpiredMsg:
		a.cues.expire(msg)
		return a, nil

	case PushMsg:
		return a, a.apply(a.Session.Push(a.ctx, a.valueInput.Value()), &a.valueInput)
	case PopMsg:
		return a, a.apply(a.Session.Pop(a.ctx), nil)
	case PeekMsg:
		return a, a.apply(a.Session.Peek(a.ctx), nil)
	case ClearMsg:
		return a, a.apply(a.Session.Clear(a.ctx), nil)
	case ResizeMsg:
		return a, a.apply(a.Session.Resize(a.ctx, a.capacityInput.Value()), &a.capacityInput)
	case RandomizeMsg:
		return a, a.apply(a.Session.Randomize(a.ctx), nil)
	case DisplayAllMsg:
		return a, a.apply(a.Session.DisplayAll(a.ctx), nil)

	case ToggleThemeMsg:
		return a, a.toggleTheme()
	case CopyArrayMsg:
		return a, a.copyArray()
	case ShowHistoryMsg:
		w := NewHistoryWindow(a.Session.History().Entries(), a.Styles)
		if a.width > 0 {
			w.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		}
		a.Overlays.Push(Overlay{View: w, Dismiss: "esc"})
		return a, w.Init()
	case DismissOverlayMsg:
		a.Overlays.Pop()
		return a, nil
	case FocusMsg:
		return a, a.setFocus(msg.Area)

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	return a, a.updateFocusedInput(msg)
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if s == "ctrl+c" {
		return tea.Quit
	}
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}

	switch s {
	case "tab":
		a.KeyHandler.Reset()
		return a.setFocus(a.Focus.Next())
	case "shift+tab":
		a.KeyHandler.Reset()
		return a.setFocus(a.Focus.Prev())
	}

	if a.Focus.Current.IsInput() {
		switch s {
		case "esc":
			return a.setFocus(FocusStack)
		case "enter":
			if a.Focus.Current == FocusValue {
				return func() tea.Msg { return PushMsg{} }
			}
			return func() tea.Msg { return ResizeMsg{} }
		}
		return a.updateFocusedInput(msg)
	}

	if consumed, cmd := a.KeyHandler.Handle(foldKey(msg)); consumed {
		return cmd
	}
	return nil
}

// foldKey lowercases a single typed letter so shortcuts work with
// Shift or Caps Lock held.
func foldKey(msg tea.KeyMsg) tea.KeyMsg {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return msg
	}
	msg.Runes = []rune{unicode.ToLower(msg.Runes[0])}
	return msg
}

func (a *appModelAdapter) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.Focus.Current {
	case FocusValue:
		a.valueInput, cmd = a.valueInput.Update(msg)
	case FocusCapacity:
		a.capacityInput, cmd = a.capacityInput.Update(msg)
	}
	return cmd
}

// setFocus moves focus and syncs the text inputs' cursor state.
func (m *AppModel) setFocus(area FocusArea) tea.Cmd {
	if !m.Focus.SetFocus(area) {
		return nil
	}
	m.valueInput.Blur()
	m.capacityInput.Blur()
	switch area {
	case FocusValue:
		return m.valueInput.Focus()
	case FocusCapacity:
		return m.capacityInput.Focus()
	}
	return nil
}

// apply carries out an Effect: notification, cue, input clearing,
// re-render and the animation gate timer.
func (m *AppModel) apply(e session.Effect, input *textinput.Model) tea.Cmd {
	if e.Ignored {
		return nil
	}
	var cmds []tea.Cmd
	if e.Notice != nil {
		cmds = append(cmds, m.Toasts.Push(*e.Notice))
	}
	if e.ClearInput && input != nil {
		input.Reset()
	}
	if e.Render {
		m.render()
	}
	if e.Cue != session.CueNone {
		cmds = append(cmds, m.cues.play(e.Cue, e.CueIndex))
	}
	if e.Animate {
		cmds = append(cmds, m.settleCmd())
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		return top.View.View()
	}

	st := a.Styles
	var b strings.Builder
	b.WriteString(st.Title.Render("Stack Visualizer"))
	b.WriteString(st.Muted.Render("  theme: " + string(a.Theme)))
	b.WriteString("\n\n")

	stackBox := st.Box
	if a.Focus.Current == FocusStack {
		stackBox = st.BoxFocused
	}
	column := stackBox.Render(RenderStack(StackFrame{
		Snapshot:  a.snapshot,
		Shaking:   a.cues.shaking,
		GlowIndex: a.cues.glowIndex,
	}, st))
	status := st.Box.Render(RenderStatus(a.snapshot, st))
	b.WriteString(joinPanels(column, status, a.Toasts.View(st)))
	b.WriteString("\n")

	b.WriteString(a.inputLine())
	b.WriteString("\n")
	b.WriteString(st.Muted.Render("Last operation: ") + st.Normal.Render(a.Session.LastOperation()))
	b.WriteString("\n")
	if a.KeyHandler.LeaderWaiting {
		b.WriteString(RenderKeybindHelp(a.KeyHandler, st))
	} else {
		b.WriteString(RenderHelpBar(a.KeyHandler, st))
	}
	return b.String()
}

func (a *appModelAdapter) inputLine() string {
	box := func(area FocusArea, view string) string {
		if a.Focus.Current == area {
			return a.Styles.BoxFocused.Render(view)
		}
		return a.Styles.Box.Render(view)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		box(FocusValue, a.valueInput.View()),
		" ",
		box(FocusCapacity, a.capacityInput.View()),
	)
}
