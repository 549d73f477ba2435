package console

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchState holds the pane's regex search.
type searchState struct {
	entering bool
	invalid  bool // last confirm failed to compile
	query    string
	regex    *regexp.Regexp
	input    textinput.Model
	matches  []int // line indices that match
	matchIdx int
}

func (s searchState) active() bool {
	return s.regex != nil
}

// handleSearchInput handles keys while the search input is open.
func (m Model) handleSearchInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		query := m.search.input.Value()
		if query == "" {
			m.search.entering = false
			m.search.input.Blur()
			return m, nil
		}

		re, err := regexp.Compile("(?i)" + query)
		if err != nil {
			// Stay in input mode; SearchStatus reports the bad pattern.
			m.search.invalid = true
			return m, nil
		}
		m.search.invalid = false

		m.search.regex = re
		m.search.query = query
		m.search.entering = false
		m.search.input.Blur()

		m.findMatches()
		if len(m.search.matches) > 0 {
			m.search.matchIdx = 0
			m.scrollToMatch()
		}
		m.refresh(true)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.search.entering = false
		m.search.invalid = false
		m.search.input.Blur()
		m.search.input.SetValue("")
		return m, nil
	}

	// Any edit clears the invalid flag; the pattern may be fixed now.
	m.search.invalid = false
	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return m, cmd
}

// clearSearch drops the search state.
func (m *Model) clearSearch() {
	m.search.regex = nil
	m.search.query = ""
	m.search.matches = nil
	m.search.matchIdx = 0
}

// findMatches locates all lines matching the current pattern.
func (m *Model) findMatches() {
	m.search.matches = nil
	if m.search.regex == nil {
		return
	}
	for i, line := range m.buf.Lines() {
		if m.search.regex.MatchString(line) {
			m.search.matches = append(m.search.matches, i)
		}
	}
	if m.search.matchIdx >= len(m.search.matches) {
		m.search.matchIdx = 0
	}
}

// nextMatch moves to the next match.
func (m *Model) nextMatch() {
	if len(m.search.matches) == 0 {
		return
	}
	m.search.matchIdx = (m.search.matchIdx + 1) % len(m.search.matches)
	m.scrollToMatch()
	m.refresh(true)
}

// prevMatch moves to the previous match.
func (m *Model) prevMatch() {
	if len(m.search.matches) == 0 {
		return
	}
	m.search.matchIdx = (m.search.matchIdx - 1 + len(m.search.matches)) % len(m.search.matches)
	m.scrollToMatch()
	m.refresh(true)
}

// scrollToMatch centers the viewport on the active match and stops follow.
func (m *Model) scrollToMatch() {
	if len(m.search.matches) == 0 || m.search.matchIdx >= len(m.search.matches) {
		return
	}
	target := m.search.matches[m.search.matchIdx]
	m.autoScroll = false
	scrollTo := max(target-m.viewport.Height/2, 0)
	m.viewport.SetYOffset(scrollTo)
}

// SearchStatus summarizes the search for the host's status line. Empty when
// no search is active.
func (m Model) SearchStatus() string {
	if m.search.entering {
		if m.search.invalid {
			return fmt.Sprintf("Invalid pattern: %s", m.search.input.Value())
		}
		return "search: " + m.search.input.Value()
	}
	if m.search.regex == nil {
		return ""
	}
	if len(m.search.matches) == 0 {
		return fmt.Sprintf("Pattern not found: %s", m.search.query)
	}
	return fmt.Sprintf("/%s %d/%d", m.search.query, m.search.matchIdx+1, len(m.search.matches))
}
