package ui

import (
	"stackviz/internal/prefs"
	"stackviz/internal/session"

	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colours a theme is built from.
type Palette struct {
	Accent    string // titles, highlights
	Highlight string // focused borders, selected items
	Danger    string // errors, shake cue
	Warning   string // warnings
	Success   string // success toasts
	Muted     string // dimmed text, hints, empty slots
	Text      string // normal text
	BlockFill string // filled block background
	BlockText string // filled block foreground
	Glow      string // peek highlight background
}

// LightPalette is used with prefs.ThemeLight.
var LightPalette = Palette{
	Accent:    "25",
	Highlight: "127",
	Danger:    "160",
	Warning:   "166",
	Success:   "28",
	Muted:     "245",
	Text:      "235",
	BlockFill: "31",
	BlockText: "231",
	Glow:      "220",
}

// DarkPalette is used with prefs.ThemeDark.
var DarkPalette = Palette{
	Accent:    "86",
	Highlight: "205",
	Danger:    "196",
	Warning:   "208",
	Success:   "42",
	Muted:     "241",
	Text:      "252",
	BlockFill: "62",
	BlockText: "230",
	Glow:      "226",
}

// PaletteFor returns the palette for a theme.
func PaletteFor(t prefs.Theme) Palette {
	if t == prefs.ThemeDark {
		return DarkPalette
	}
	return LightPalette
}

// Styles contains the style definitions for one theme.
type Styles struct {
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Normal     lipgloss.Style
	Hint       lipgloss.Style
	Section    lipgloss.Style
	Value      lipgloss.Style // status values
	Box        lipgloss.Style // unfocused panel
	BoxFocused lipgloss.Style

	BlockFilled lipgloss.Style
	BlockEmpty  lipgloss.Style
	BlockGlow   lipgloss.Style
	BlockShake  lipgloss.Style
	IndexLabel  lipgloss.Style
	Pointer     lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	toastBox   map[session.Level]lipgloss.Style
	toastTitle map[session.Level]lipgloss.Style
}

// NewStyles builds the styles for a theme.
func NewStyles(t prefs.Theme) Styles {
	p := PaletteFor(t)
	block := lipgloss.NewStyle().Width(blockWidth).Align(lipgloss.Center)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Muted)).
		Padding(0, 1)

	s := Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Accent)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		Normal:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)),
		Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Highlight)),
		Value:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Accent)),
		Box:     box,

		BoxFocused: box.BorderForeground(lipgloss.Color(p.Highlight)),

		BlockFilled: block.
			Background(lipgloss.Color(p.BlockFill)).
			Foreground(lipgloss.Color(p.BlockText)).
			Bold(true),
		BlockEmpty: block.
			Foreground(lipgloss.Color(p.Muted)),
		BlockGlow: block.
			Background(lipgloss.Color(p.Glow)).
			Foreground(lipgloss.Color("16")).
			Bold(true),
		BlockShake: block.
			Background(lipgloss.Color(p.Danger)).
			Foreground(lipgloss.Color("231")),
		IndexLabel: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		Pointer:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Highlight)),

		HelpKey:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Highlight)),
		HelpDesc: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
	}

	levelColor := map[session.Level]string{
		session.LevelDefault: p.Accent,
		session.LevelSuccess: p.Success,
		session.LevelWarning: p.Warning,
		session.LevelError:   p.Danger,
	}
	s.toastBox = make(map[session.Level]lipgloss.Style, len(levelColor))
	s.toastTitle = make(map[session.Level]lipgloss.Style, len(levelColor))
	for level, c := range levelColor {
		s.toastBox[level] = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c)).
			Padding(0, 1).
			Width(toastWidth)
		s.toastTitle[level] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c))
	}
	return s
}

// ToastBox returns the box style for a notification level.
func (s Styles) ToastBox(level session.Level) lipgloss.Style {
	if st, ok := s.toastBox[level]; ok {
		return st
	}
	return s.toastBox[session.LevelDefault]
}

// ToastTitle returns the title style for a notification level.
func (s Styles) ToastTitle(level session.Level) lipgloss.Style {
	if st, ok := s.toastTitle[level]; ok {
		return st
	}
	return s.toastTitle[session.LevelDefault]
}
