package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures spyglass's runtime settings.
type Config struct {
	MaxLines      int
	AutoScroll    bool
	CaptureStdout bool
	CaptureStderr bool
	Theme         string
	LogFile       string
	Demo          bool
	DemoInterval  time.Duration
}

const (
	// DefaultMaxLines bounds the visible console buffer.
	DefaultMaxLines = 10000

	defaultDemoInterval = 750 * time.Millisecond
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		MaxLines:      DefaultMaxLines,
		AutoScroll:    true,
		CaptureStdout: true,
		CaptureStderr: true,
		Theme:         "Nightfox",
		LogFile:       defaultLogPath(),
		Demo:          true,
		DemoInterval:  defaultDemoInterval,
	}
}

// DefaultPath returns the default config file location under the XDG config
// directory.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "spyglass", "config.toml")
}

func defaultLogPath() string {
	return filepath.Join(xdg.StateHome, "spyglass", "spyglass.log")
}

// Load locates and parses the config file, falling back to defaults when it
// is missing. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		MaxLines       *int    `toml:"max_lines"`
		AutoScroll     *bool   `toml:"auto_scroll"`
		CaptureStdout  *bool   `toml:"capture_stdout"`
		CaptureStderr  *bool   `toml:"capture_stderr"`
		Theme          string  `toml:"theme"`
		LogFile        *string `toml:"log_file"`
		Demo           *bool   `toml:"demo"`
		DemoIntervalMS int     `toml:"demo_interval_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.MaxLines != nil && *raw.MaxLines > 0 {
		cfg.MaxLines = *raw.MaxLines
	}
	if raw.AutoScroll != nil {
		cfg.AutoScroll = *raw.AutoScroll
	}
	if raw.CaptureStdout != nil {
		cfg.CaptureStdout = *raw.CaptureStdout
	}
	if raw.CaptureStderr != nil {
		cfg.CaptureStderr = *raw.CaptureStderr
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if raw.LogFile != nil {
		// An explicit empty string disables the diagnostic log.
		cfg.LogFile = mustExpand(strings.TrimSpace(*raw.LogFile))
	}
	if raw.Demo != nil {
		cfg.Demo = *raw.Demo
	}
	if raw.DemoIntervalMS > 0 {
		cfg.DemoInterval = time.Duration(raw.DemoIntervalMS) * time.Millisecond
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPath(), nil
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	if path == "" {
		return ""
	}
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
