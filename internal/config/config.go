// Package config provides environment configuration and the persisted
// console preferences.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultBackendURL is used when BACKEND_URL is not set.
const DefaultBackendURL = "http://localhost:8000"

// BackendURL returns the AI HR backend base URL from the environment.
func BackendURL() string {
	if u := os.Getenv("BACKEND_URL"); u != "" {
		return u
	}
	return DefaultBackendURL
}

// Preferences is the small per-user state the console keeps between runs.
// The only remembered value is the last-chosen interface locale.
type Preferences struct {
	Locale string `json:"locale,omitempty"`
}

// prefsDir is the subdirectory under the user config dir.
const prefsDir = "hr-console"

func prefsPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(base, prefsDir, "prefs.json"), nil
}

// LoadPreferences reads the stored preferences. A missing or unreadable file
// yields empty preferences; preference loading never blocks the console.
func LoadPreferences() Preferences {
	var p Preferences
	path, err := prefsPath()
	if err != nil {
		return p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Preferences{}
	}
	return p
}

// SavePreferences writes the preferences to the user config dir.
func SavePreferences(p Preferences) error {
	path, err := prefsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}
