package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// noticeWidth caps a transient notice so it cannot crowd out the rest of
// the status bar.
const noticeWidth = 48

// renderHeader renders the top bar: logo, capture badges, and counters.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	parts := []string{
		styles.Logo.Render("spyglass"),
		m.renderCaptureBadge("stdout", m.redirector.CapturingStdout(), styles),
		m.renderCaptureBadge("stderr", m.redirector.CapturingStderr(), styles),
	}

	snap := m.status.Stats
	if total := snap.TotalBytes(); total > 0 {
		parts = append(parts, styles.MutedText.Render(
			fmt.Sprintf("%s in %s writes",
				humanize.Bytes(uint64(total)),
				humanize.Comma(snap.TotalWrites()))))
	}
	if !snap.LastWrite.IsZero() {
		parts = append(parts, styles.FaintText.Render(
			"last "+snap.LastWrite.Format("15:04:05")))
	}
	if !m.status.Since.IsZero() {
		parts = append(parts, styles.FaintText.Render(
			"up "+time.Since(m.status.Since).Round(time.Second).String()))
	}

	content := truncateBar(strings.Join(parts, sep), m.width)
	return styles.Header.Width(m.width).Render(content)
}

// renderCaptureBadge shows one stream's capture state.
func (m Model) renderCaptureBadge(source string, on bool, styles Styles) string {
	if on {
		return styles.SourceStyle(source).Render(source)
	}
	return styles.FaintText.Render(source + " off")
}

// renderStatusBar renders the bottom bar: line count, follow state, search
// state, and any transient notice.
func (m Model) renderStatusBar() string {
	styles := m.theme.Styles()
	sep := "  "

	parts := []string{
		styles.MutedText.Render(humanize.Comma(int64(m.console.LineCount())) + " lines"),
	}

	if m.console.AutoScroll() {
		parts = append(parts, styles.SuccessText.Render("follow"))
	} else {
		parts = append(parts, styles.WarningText.Render("paused"))
	}

	if status := m.console.SearchStatus(); status != "" {
		parts = append(parts, styles.AccentText.Render(status))
	}

	if m.notice != "" {
		// The notice is plain text at this point, so a rune-width
		// truncate is safe here.
		parts = append(parts, styles.InfoText.Render(
			runewidth.Truncate(m.notice, noticeWidth, "…")))
	}

	parts = append(parts, styles.FaintText.Render("h/? help"))

	content := truncateBar(strings.Join(parts, sep), m.width)
	return styles.Footer.Width(m.width).Render(content)
}

// truncateBar fits an already-styled bar to the terminal width. The content
// is full of SGR escape sequences by now, so the cut has to be ANSI-aware;
// counting escape bytes as visible cells would truncate far too early and
// could split a sequence in half.
func truncateBar(content string, width int) string {
	if width <= 0 {
		return content
	}
	return ansi.Truncate(content, width, "…")
}
