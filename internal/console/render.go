package console

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles control how the pane renders its lines. Hosts derive these from
// their theme; tests and bare embeds use DefaultStyles.
type Styles struct {
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Danger      lipgloss.Style
	Info        lipgloss.Style
	Match       lipgloss.Style // passive search match
	MatchActive lipgloss.Style // the current search match

	set bool
}

func (s Styles) isZero() bool {
	return !s.set
}

// DefaultStyles returns a plain scheme usable on any terminal background.
func DefaultStyles() Styles {
	return Styles{
		Text:        lipgloss.NewStyle(),
		Muted:       lipgloss.NewStyle().Faint(true),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Danger:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Info:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Match:       lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		MatchActive: lipgloss.NewStyle().Reverse(true),
		set:         true,
	}
}

// NewStyles builds a Styles from explicit lipgloss styles.
func NewStyles(text, muted, success, warning, danger, info, match, matchActive lipgloss.Style) Styles {
	return Styles{
		Text:        text,
		Muted:       muted,
		Success:     success,
		Warning:     warning,
		Danger:      danger,
		Info:        info,
		Match:       match,
		MatchActive: matchActive,
		set:         true,
	}
}

// SetStyles swaps the pane's styles, e.g. after a theme change.
func (m *Model) SetStyles(styles Styles) {
	if styles.isZero() {
		styles = DefaultStyles()
	}
	m.styles = styles
	m.refresh(true)
}

// Log level tokens get colorized when they appear in output lines.
var levelRe = regexp.MustCompile(`\b(INFO|WARN|WARNING|ERROR|DEBUG|FATAL|PANIC)\b`)

// renderContent renders the visible lines with level colorizing and search
// highlighting.
func (m *Model) renderContent() string {
	lines := m.buf.Lines()
	if len(lines) == 0 {
		return m.styles.Muted.Render("No output yet")
	}

	matchSet := make(map[int]bool, len(m.search.matches))
	for _, idx := range m.search.matches {
		matchSet[idx] = true
	}
	activeMatch := -1
	if len(m.search.matches) > 0 && m.search.matchIdx < len(m.search.matches) {
		activeMatch = m.search.matches[m.search.matchIdx]
	}

	var b strings.Builder
	for i, line := range lines {
		switch {
		case i == activeMatch:
			b.WriteString(m.styles.MatchActive.Render(line))
		case matchSet[i]:
			b.WriteString(m.styles.Match.Render(line))
		default:
			b.WriteString(m.colorizeLine(line))
		}
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// colorizeLine highlights a recognized log level token, leaving the rest of
// the line as-is. Lines without a level token pass through unchanged.
func (m *Model) colorizeLine(line string) string {
	loc := levelRe.FindStringIndex(line)
	if loc == nil {
		return line
	}
	level := line[loc[0]:loc[1]]
	return line[:loc[0]] + m.levelStyle(level).Render(level) + line[loc[1]:]
}

func (m *Model) levelStyle(level string) lipgloss.Style {
	switch level {
	case "INFO":
		return m.styles.Success
	case "WARN", "WARNING":
		return m.styles.Warning
	case "ERROR", "FATAL", "PANIC":
		return m.styles.Danger
	case "DEBUG":
		return m.styles.Info
	default:
		return m.styles.Text
	}
}
