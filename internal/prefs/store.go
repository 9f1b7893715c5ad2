package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Theme enumerates the persisted theme preference values.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid reports whether t is a recognized theme value.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// prefsFile is the on-disk representation of the preference store.
type prefsFile struct {
	Version string `json:"version"`
	Theme   Theme  `json:"theme,omitempty"`
}

// Store persists user preferences between sessions. An absent file or absent
// key yields the dark theme default.
type Store struct {
	path    string
	mu      sync.RWMutex
	version string
	theme   Theme
}

// NewStore creates a Store backed by the given path and loads any existing
// preferences from disk.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    path,
		version: "1.0",
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	if err := s.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		// Start with defaults when no file exists yet.
	}

	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file prefsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}

	s.version = file.Version
	if file.Theme.Valid() {
		s.theme = file.Theme
	}

	return nil
}

// Theme returns the persisted theme preference, defaulting to dark when unset.
func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.theme.Valid() {
		return ThemeDark
	}
	return s.theme
}

// HasTheme reports whether a theme preference was ever persisted. Used to
// decide whether a content-level default should apply.
func (s *Store) HasTheme() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.theme.Valid()
}

// SetTheme records the theme preference and writes it to disk synchronously,
// so a read after a successful write always observes the new value.
func (s *Store) SetTheme(t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("unknown theme %q", t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = t
	return s.save()
}

// save writes the store to disk atomically. Callers must hold the lock.
func (s *Store) save() error {
	file := prefsFile{
		Version: s.version,
		Theme:   s.theme,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// DefaultPath returns the conventional preferences location under the user
// config directory.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(base, "pincoin", "prefs.json"), nil
}
