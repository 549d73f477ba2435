package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxLines != DefaultMaxLines {
		t.Fatalf("MaxLines = %d, want %d", cfg.MaxLines, DefaultMaxLines)
	}
	if !cfg.AutoScroll || !cfg.CaptureStdout || !cfg.CaptureStderr {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Theme != "Nightfox" {
		t.Fatalf("Theme = %q, want Nightfox", cfg.Theme)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
max_lines = 250
auto_scroll = false
capture_stdout = false
capture_stderr = true
theme = "Slate"
demo = false
demo_interval_ms = 100
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxLines != 250 {
		t.Fatalf("MaxLines = %d, want 250", cfg.MaxLines)
	}
	if cfg.AutoScroll {
		t.Fatal("AutoScroll = true, want false")
	}
	if cfg.CaptureStdout {
		t.Fatal("CaptureStdout = true, want false")
	}
	if !cfg.CaptureStderr {
		t.Fatal("CaptureStderr = false, want true")
	}
	if cfg.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", cfg.Theme)
	}
	if cfg.Demo {
		t.Fatal("Demo = true, want false")
	}
	if cfg.DemoInterval != 100*time.Millisecond {
		t.Fatalf("DemoInterval = %v, want 100ms", cfg.DemoInterval)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `max_lines = 42`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxLines != 42 {
		t.Fatalf("MaxLines = %d, want 42", cfg.MaxLines)
	}
	if !cfg.AutoScroll || !cfg.CaptureStdout || !cfg.CaptureStderr || !cfg.Demo {
		t.Fatalf("absent fields should keep defaults: %+v", cfg)
	}
}

func TestLoadExplicitFalseSurvives(t *testing.T) {
	// "absent" and "false" must remain distinguishable.
	path := writeConfig(t, `capture_stderr = false`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CaptureStderr {
		t.Fatal("CaptureStderr = true, want false")
	}
	if !cfg.CaptureStdout {
		t.Fatal("CaptureStdout default lost")
	}
}

func TestLoadInvalidMaxLinesIgnored(t *testing.T) {
	path := writeConfig(t, `max_lines = -5`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxLines != DefaultMaxLines {
		t.Fatalf("MaxLines = %d, want default %d", cfg.MaxLines, DefaultMaxLines)
	}
}

func TestLoadEmptyLogFileDisables(t *testing.T) {
	path := writeConfig(t, `log_file = ""`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty (disabled)", cfg.LogFile)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := writeConfig(t, `max_lines = [not toml`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load() succeeded on malformed TOML")
	}
}
