package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"
)

// Renderer names accepted in preferences.
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Notes backends accepted in preferences.
const (
	NotesBackendFile   = "file"
	NotesBackendSQLite = "sqlite"
	NotesBackendMemory = "memory"
)

// Preferences are per-player settings. They are read from a JSON file in the user's
// config directory and overridden by ESCAPEROOM_* environment variables.
type Preferences struct {
	Language     string `json:"language" env:"ESCAPEROOM_LANG"`
	Renderer     string `json:"renderer" env:"ESCAPEROOM_RENDERER"`
	NotesBackend string `json:"notes_backend" env:"ESCAPEROOM_NOTES_BACKEND"`
	NotesPath    string `json:"notes_path" env:"ESCAPEROOM_NOTES_PATH"`
	GameConfig   string `json:"game_config,omitempty" env:"ESCAPEROOM_CONFIG"`

	mu   sync.Mutex
	path string
}

var (
	current     *Preferences
	currentOnce sync.Once
)

// DefaultPreferences returns preferences with no file behind them.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Renderer:     RendererTUI,
		NotesBackend: NotesBackendFile,
	}
}

// Current returns the process-wide preferences, loading them on first use.
// Load problems are reported on stderr and defaults are used instead.
func Current() *Preferences {
	currentOnce.Do(func() {
		p, err := LoadPreferences(DefaultPreferencesPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load preferences: %v\n", err)
			p = DefaultPreferences()
		}
		current = p
	})
	return current
}

// DefaultPreferencesPath returns the preferences file location, or "" when the
// user config directory is unknown.
func DefaultPreferencesPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "escaperoom", "preferences.json")
}

// LoadPreferences reads preferences from path (a missing file is not an error) and
// applies environment overrides.
func LoadPreferences(path string) (*Preferences, error) {
	p := DefaultPreferences()
	p.path = path

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, p); err != nil {
				return nil, fmt.Errorf("decode preferences %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read preferences: %w", err)
		}
	}

	if err := env.Parse(p); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return p, nil
}

// Path returns the file the preferences are saved to.
func (p *Preferences) Path() string {
	return p.path
}

// SetLanguage stores the preferred language and saves the preferences.
func (p *Preferences) SetLanguage(lang string) error {
	p.mu.Lock()
	p.Language = lang
	p.mu.Unlock()
	return p.Save()
}

// Save writes the preferences to their file. It is a no-op without a path.
func (p *Preferences) Save() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}
