// Package prefs handles spyglass user preferences persistence.
// Preferences are stored in $XDG_CONFIG_HOME/spyglass/prefs.toml and record
// choices made inside the UI (theme cycling, auto-scroll toggle) so they
// survive restarts. Configuration proper lives in package config.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for spyglass.
type Prefs struct {
	Theme      string `toml:"theme"`
	AutoScroll *bool  `toml:"auto_scroll"`
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "spyglass", "prefs.toml")
}

// Load reads preferences from the given path, degrading to the zero value on
// any failure. A preference that cannot be read is not worth an error.
func Load(path string) Prefs {
	resolved := resolvePath(path)
	var p Prefs

	file, err := os.Open(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Prefs{}
		}
		return p
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Prefs{}
	}
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Prefs{}
	}
	return p
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved := resolvePath(path)

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) string {
	if strings.TrimSpace(path) == "" {
		return DefaultPath()
	}
	return path
}
