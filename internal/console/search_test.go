package console

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/spyglass/internal/stream"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func searchFor(t *testing.T, m Model, query string) Model {
	t.Helper()
	m, _ = m.Update(keyRunes("/"))
	if !m.Searching() {
		t.Fatal("pane should be in search input mode")
	}
	for _, r := range query {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func paneWithLines(lines ...string) Model {
	m := sizedPane(Options{AutoScroll: true})
	for _, line := range lines {
		m = deliver(m, line+"\n", stream.Stdout)
	}
	return m
}

func TestSearchFindsMatches(t *testing.T) {
	m := paneWithLines("alpha", "beta", "alphabet", "gamma")
	m = searchFor(t, m, "alpha")

	status := m.SearchStatus()
	if !strings.Contains(status, "1/2") {
		t.Fatalf("SearchStatus() = %q, want 1/2", status)
	}
	if m.AutoScroll() {
		t.Fatal("jumping to a match should stop follow")
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	m := paneWithLines("ERROR something", "all fine")
	m = searchFor(t, m, "error")
	if !strings.Contains(m.SearchStatus(), "1/1") {
		t.Fatalf("SearchStatus() = %q", m.SearchStatus())
	}
}

func TestSearchNoMatches(t *testing.T) {
	m := paneWithLines("nothing here")
	m = searchFor(t, m, "zzz")
	if !strings.Contains(m.SearchStatus(), "not found") {
		t.Fatalf("SearchStatus() = %q", m.SearchStatus())
	}
}

func TestSearchCycle(t *testing.T) {
	m := paneWithLines("hit one", "miss", "hit two", "hit three")
	m = searchFor(t, m, "hit")

	m, _ = m.Update(keyRunes("n"))
	if !strings.Contains(m.SearchStatus(), "2/3") {
		t.Fatalf("after n: %q", m.SearchStatus())
	}
	m, _ = m.Update(keyRunes("n"))
	m, _ = m.Update(keyRunes("n"))
	if !strings.Contains(m.SearchStatus(), "1/3") {
		t.Fatalf("wraparound: %q", m.SearchStatus())
	}
	m, _ = m.Update(keyRunes("N"))
	if !strings.Contains(m.SearchStatus(), "3/3") {
		t.Fatalf("after N: %q", m.SearchStatus())
	}
}

func TestSearchClearedByEscape(t *testing.T) {
	m := paneWithLines("needle in here")
	m = searchFor(t, m, "needle")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.SearchStatus() != "" {
		t.Fatalf("SearchStatus() = %q, want empty after esc", m.SearchStatus())
	}
}

func TestSearchInputCancel(t *testing.T) {
	m := paneWithLines("content")
	m, _ = m.Update(keyRunes("/"))
	m, _ = m.Update(keyRunes("abc"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Searching() {
		t.Fatal("esc should leave search input mode")
	}
	if m.SearchStatus() != "" {
		t.Fatalf("cancelled search left status %q", m.SearchStatus())
	}
}

func TestSearchInvalidRegexStaysInInput(t *testing.T) {
	m := paneWithLines("content")
	m, _ = m.Update(keyRunes("/"))
	m, _ = m.Update(keyRunes("["))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Searching() {
		t.Fatal("invalid pattern should keep the input open")
	}
	if !strings.Contains(m.SearchStatus(), "Invalid pattern") {
		t.Fatalf("SearchStatus() = %q, want invalid-pattern feedback", m.SearchStatus())
	}

	// Editing the pattern clears the complaint.
	m, _ = m.Update(keyRunes("a"))
	if strings.Contains(m.SearchStatus(), "Invalid pattern") {
		t.Fatalf("SearchStatus() = %q after edit", m.SearchStatus())
	}

	// Completing the class ("[a]") makes the pattern valid again.
	m, _ = m.Update(keyRunes("]"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Searching() {
		t.Fatal("valid pattern should close the input")
	}
}

func TestSearchMatchesUpdateOnAppend(t *testing.T) {
	m := paneWithLines("match here")
	m = searchFor(t, m, "match")
	if !strings.Contains(m.SearchStatus(), "1/1") {
		t.Fatalf("SearchStatus() = %q", m.SearchStatus())
	}

	m = deliver(m, "another match arrives\n", stream.Stdout)
	if !strings.Contains(m.SearchStatus(), "/2") {
		t.Fatalf("appended match not counted: %q", m.SearchStatus())
	}
}

func TestClearDropsSearch(t *testing.T) {
	m := paneWithLines("match")
	m = searchFor(t, m, "match")
	m.Clear()
	if m.SearchStatus() != "" {
		t.Fatalf("Clear left search status %q", m.SearchStatus())
	}
}
