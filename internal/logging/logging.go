// Package logging sets up spyglass's own diagnostic log.
//
// The console pane swallows internal failures by policy (a pane must never
// crash or noise up its host), so anything worth keeping goes to a logrus
// file logger instead. The log file is never one of the captured streams;
// writing diagnostics into the pane that is being diagnosed would loop.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Fields aliases logrus.Fields so callers don't import logrus directly.
type Fields = logrus.Fields

var root = logrus.New()

func init() {
	// Silent until Setup points the logger at a file.
	root.SetOutput(io.Discard)
	root.SetFormatter(plainFormatter{})
	root.SetLevel(logrus.DebugLevel)
}

// Setup directs the diagnostic log to path, creating parent directories as
// needed. An empty path leaves logging disabled. The returned closer is nil
// when logging is disabled.
func Setup(path string) (io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	root.SetOutput(f)
	return f, nil
}

// SetOutput redirects the diagnostic log, primarily for tests.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	root.SetOutput(w)
}

// Named returns an entry tagged with a component field.
func Named(component string) *logrus.Entry {
	entry := logrus.NewEntry(root)
	if component != "" {
		entry = entry.WithField("component", component)
	}
	return entry
}

// plainFormatter renders "timestamp LEVEL [component] message k=v".
type plainFormatter struct{}

func (plainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry == nil {
		return nil, nil
	}

	parts := make([]string, 0, 5)
	parts = append(parts, entry.Time.Format("2006-01-02 15:04:05"))
	parts = append(parts, strings.ToUpper(entry.Level.String()))
	if component, ok := entry.Data["component"].(string); ok && component != "" {
		parts = append(parts, fmt.Sprintf("[%s]", component))
	}
	parts = append(parts, entry.Message)
	if fields := formatFields(entry.Data); fields != "" {
		parts = append(parts, fields)
	}
	return []byte(strings.Join(parts, " ") + "\n"), nil
}

func formatFields(data logrus.Fields) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		if k == "component" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, data[k]))
	}
	return strings.Join(parts, " ")
}
