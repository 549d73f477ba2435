package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	off := false
	if err := Save(path, Prefs{Theme: "Kanagawa", AutoScroll: &off}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	p := Load(path)
	if p.Theme != "Kanagawa" {
		t.Fatalf("Theme = %q, want Kanagawa", p.Theme)
	}
	if p.AutoScroll == nil || *p.AutoScroll {
		t.Fatalf("AutoScroll = %v, want false", p.AutoScroll)
	}
}

func TestLoadMissingFile(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if p.Theme != "" {
		t.Fatalf("Theme = %q, want empty", p.Theme)
	}
	if p.AutoScroll != nil {
		t.Fatal("AutoScroll should be unset for missing file")
	}
}

func TestLoadMalformedFileDegrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = [broken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p := Load(path)
	if p.Theme != "" || p.AutoScroll != nil {
		t.Fatalf("malformed prefs should degrade to zero value, got %+v", p)
	}
}

func TestSaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "prefs.toml")
	if err := Save(path, Prefs{Theme: "Slate"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if Load(path).Theme != "Slate" {
		t.Fatal("round trip through created directories failed")
	}
}
