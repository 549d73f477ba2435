package console

import (
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/spyglass/internal/linebuf"
	"github.com/five82/spyglass/internal/logging"
	"github.com/five82/spyglass/internal/stream"
)

// DefaultMaxLines bounds the visible buffer when Options leaves it unset.
const DefaultMaxLines = 10000

// Callback receives every fragment appended to the pane, tagged with its
// source label. Callbacks run on the UI loop; panics are swallowed.
type Callback func(text string, source stream.Source)

// TextMsg delivers one write to the pane. Producers on other goroutines
// must route it through tea.Program.Send so the append happens on the
// single UI event loop.
type TextMsg struct {
	Text   string
	Source stream.Source
}

// appendStatus is the internal outcome of one append. The error policy is
// "never propagate": the status is recorded and then deliberately discarded
// at the Update boundary.
type appendStatus int

const (
	appendOK appendStatus = iota
	appendEmpty
	appendFellBack
)

// Options configure a console pane.
type Options struct {
	// MaxLines caps the retained line count. Zero means DefaultMaxLines;
	// negative means unbounded.
	MaxLines int

	// AutoScroll keeps the view pinned to the newest line.
	AutoScroll bool

	// Callback, when set, observes every appended fragment.
	Callback Callback

	// Fallback is the write-through target when the pane cannot display
	// text (not yet sized, or torn down). Usually the pre-capture stdout.
	Fallback io.Writer

	// Styles control rendering. Zero value falls back to DefaultStyles.
	Styles Styles
}

// Model is the console pane: a read-only scrolling view over everything
// appended to it. It implements the usual Bubble Tea component surface and
// is mutated only from the update loop.
type Model struct {
	viewport viewport.Model
	buf      *linebuf.Buffer
	keys     keyMap
	styles   Styles

	autoScroll bool
	callback   Callback
	fallback   io.Writer
	ready      bool
	width      int
	height     int

	search searchState
}

// New returns a pane with the given options. The pane is not ready to
// display text until SetSize is called with the host's layout.
func New(opts Options) Model {
	maxLines := opts.MaxLines
	if maxLines == 0 {
		maxLines = DefaultMaxLines
	}
	if maxLines < 0 {
		maxLines = 0 // linebuf treats 0 as unbounded
	}

	styles := opts.Styles
	if styles.isZero() {
		styles = DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Search output..."
	ti.CharLimit = 100

	return Model{
		buf:        linebuf.New(maxLines),
		keys:       defaultKeyMap(),
		styles:     styles,
		autoScroll: opts.AutoScroll,
		callback:   opts.Callback,
		fallback:   opts.Fallback,
		search:     searchState{input: ti},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize lays the pane out. The first call makes the pane ready.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
		m.refresh(true)
		return
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.refresh(true)
}

// Update implements tea.Model for the pane's own concerns: text delivery
// and scroll/search keys. The host routes messages here while the pane is
// focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TextMsg:
		_ = m.append(msg.Text, msg.Source)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// Append injects text directly, outside of stream capture. The empty source
// defaults to "manual". Safe only on the UI loop; off-loop callers use an
// Appender.
func (m *Model) Append(text string, source stream.Source) {
	if source == "" {
		source = stream.Manual
	}
	_ = m.append(text, source)
}

// append is the single append path: callback first, then display, with
// write-through fallback when the display cannot take the text.
func (m *Model) append(text string, source stream.Source) appendStatus {
	if text == "" {
		return appendEmpty
	}

	m.fireCallback(text, source)

	if !m.ready {
		m.writeThrough(text)
		return appendFellBack
	}

	m.buf.Append(text)
	if m.search.active() {
		m.findMatches()
	}
	m.refresh(false)
	return appendOK
}

// fireCallback invokes the registered callback, swallowing panics so a
// broken observer cannot disturb the pane.
func (m *Model) fireCallback(text string, source stream.Source) {
	if m.callback == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logging.Named("console").WithField("panic", r).Debug("text callback panicked")
		}
	}()
	m.callback(text, source)
}

// writeThrough degrades to the fallback writer, ignoring all failures.
func (m *Model) writeThrough(text string) {
	if m.fallback == nil {
		return
	}
	if _, err := m.fallback.Write([]byte(text)); err != nil {
		logging.Named("console").WithField("error", err).Debug("fallback write failed")
	}
}

// refresh re-renders the viewport content and honors auto-scroll. force
// bypasses the dirty check after layout changes.
func (m *Model) refresh(force bool) {
	if !m.ready {
		return
	}
	if m.buf.Dirty() || force {
		m.viewport.SetContent(m.renderContent())
	}
	if m.autoScroll {
		m.viewport.GotoBottom()
	}
}

// SetCallback replaces the text callback. Nil removes it.
func (m *Model) SetCallback(cb Callback) {
	m.callback = cb
}

// SetAutoScroll toggles follow mode. Enabling jumps to the newest line;
// disabling leaves the scroll position untouched.
func (m *Model) SetAutoScroll(on bool) {
	m.autoScroll = on
	if on && m.ready {
		m.viewport.GotoBottom()
	}
}

// AutoScroll reports whether follow mode is on.
func (m Model) AutoScroll() bool {
	return m.autoScroll
}

// Clear empties the visible buffer.
func (m *Model) Clear() {
	m.buf.Clear()
	m.clearSearch()
	m.refresh(true)
}

// SetMaxLines changes the retention cap at runtime.
func (m *Model) SetMaxLines(maxLines int) {
	m.buf.SetMaxLines(maxLines)
	m.refresh(false)
}

// LineCount reports the number of visible lines.
func (m Model) LineCount() int {
	return m.buf.Len()
}

// Content returns the visible buffer as plain text, e.g. for the clipboard.
func (m Model) Content() string {
	return m.buf.String()
}

// Ready reports whether the pane has been sized and can display text.
func (m Model) Ready() bool {
	return m.ready
}

// Searching reports whether the search input is open.
func (m Model) Searching() bool {
	return m.search.entering
}

// ScrollOffset exposes the viewport offset for tests and the host status
// line.
func (m Model) ScrollOffset() int {
	return m.viewport.YOffset
}

// AtBottom reports whether the newest line is in view.
func (m Model) AtBottom() bool {
	return m.viewport.AtBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return m.viewport.View()
}

// handleKey processes scroll, follow, and search keys.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.search.entering {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.ToggleFollow):
		m.SetAutoScroll(!m.autoScroll)

	case key.Matches(msg, m.keys.Search):
		m.search.entering = true
		m.search.input.Focus()
		m.search.input.SetValue("")

	case key.Matches(msg, m.keys.NextMatch):
		m.nextMatch()

	case key.Matches(msg, m.keys.PrevMatch):
		m.prevMatch()

	case key.Matches(msg, m.keys.Escape):
		if m.search.regex != nil {
			m.clearSearch()
			m.refresh(true)
		}

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.autoScroll = false

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.autoScroll = true

	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
		m.autoScroll = false

	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
		m.autoScroll = false

	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfViewDown()
		m.autoScroll = false

	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfViewUp()
		m.autoScroll = false

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		m.autoScroll = false

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		m.autoScroll = false
	}

	return m, nil
}
