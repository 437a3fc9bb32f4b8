// Package prefs persists user preferences (currently the colour theme)
// as a small JSON file.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// HomeEnv is the env var override for the preferences directory.
	HomeEnv = "STACKVIZ_HOME"
	// DefaultHome is the default preferences directory, relative to the user's home.
	DefaultHome = ".stackviz"
	// FileName is the preferences file inside the preferences directory.
	FileName = "prefs.json"
)

// Theme is the colour theme name.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Prefs is the persisted preference set.
type Prefs struct {
	Theme Theme `json:"theme"`
}

// Store reads and writes Prefs at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store at $STACKVIZ_HOME/prefs.json, or
// ~/.stackviz/prefs.json when the env var is unset.
func NewStore() (*Store, error) {
	base := os.Getenv(HomeEnv)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, DefaultHome)
	}
	return &Store{path: filepath.Join(base, FileName)}, nil
}

// NewStoreAt creates a store backed by the given file.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the preferences. A missing file yields the defaults and no
// error; an unknown theme value falls back to light.
func (s *Store) Load() (Prefs, error) {
	p := Prefs{Theme: ThemeLight}
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read prefs: %w", err)
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return Prefs{Theme: ThemeLight}, fmt.Errorf("parse prefs %s: %w", s.path, err)
	}
	if p.Theme != ThemeDark {
		p.Theme = ThemeLight
	}
	return p, nil
}

// Save writes the preferences, creating the directory if needed.
func (s *Store) Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}
