package ui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/spyglass/internal/capture"
	"github.com/five82/spyglass/internal/config"
	"github.com/five82/spyglass/internal/console"
	"github.com/five82/spyglass/internal/logging"
	"github.com/five82/spyglass/internal/prefs"
	"github.com/five82/spyglass/internal/stats"
)

// headerTick drives the byte/write counters in the header.
const headerTick = time.Second

// noticeTicks is how many ticks a transient status note stays visible.
const noticeTicks = 3

// Options configures the UI.
type Options struct {
	Redirector *capture.Redirector
	Stats      *stats.Store
	Config     config.Config
	Callback   console.Callback
	PrefsPath  string

	// OnReady fires once, after the first layout has installed capture.
	// Background producers should start here so nothing they print can
	// race the redirection.
	OnReady func()
}

// Model is the root application state for Bubble Tea.
type Model struct {
	redirector *capture.Redirector
	stats      *stats.Store
	config     config.Config
	prefsPath  string
	onReady    func()

	theme  Theme
	keys   keyMap
	status Status

	console console.Model

	width  int
	height int
	ready  bool

	showHelp  bool
	notice    string
	noticeAge int
}

// Status is the per-tick header snapshot.
type Status struct {
	Stats stats.Snapshot
	Since time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	themeName := opts.Config.Theme
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	userPrefs := prefs.Load(prefsPath)
	if userPrefs.Theme != "" {
		themeName = userPrefs.Theme
	}
	autoScroll := opts.Config.AutoScroll
	if userPrefs.AutoScroll != nil {
		autoScroll = *userPrefs.AutoScroll
	}

	theme := GetTheme(themeName)

	pane := console.New(console.Options{
		MaxLines:   opts.Config.MaxLines,
		AutoScroll: autoScroll,
		Callback:   opts.Callback,
		Fallback:   opts.Redirector.OriginalStdout(),
		Styles:     theme.ConsoleStyles(),
	})

	return Model{
		redirector: opts.Redirector,
		stats:      opts.Stats,
		config:     opts.Config,
		prefsPath:  prefsPath,
		onReady:    opts.OnReady,
		theme:      theme,
		keys:       defaultKeyMap(),
		console:    pane,
		status:     Status{Since: time.Now()},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(headerTick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.console.SetSize(msg.Width, m.consoleHeight())
		if !m.ready {
			m.ready = true
			// Capture waits for the first layout so that anything printed
			// before the pane can display lands on the real terminal.
			m.redirector.Set(m.config.CaptureStdout, m.config.CaptureStderr)
			if m.onReady != nil {
				m.onReady()
				m.onReady = nil
			}
		}
		return m, nil

	case tickMsg:
		return m.handleTick()

	case console.TextMsg:
		var cmd tea.Cmd
		m.console, cmd = m.console.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderHeader() + "\n" + m.console.View() + "\n" + m.renderStatusBar()
}

// consoleHeight is the pane height under the header and status bar.
func (m Model) consoleHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// While the search prompt is open, every key belongs to it.
	if m.console.Searching() {
		var cmd tea.Cmd
		m.console, cmd = m.console.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.savePrefs()
		m.redirector.Restore()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Theme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.console.SetStyles(m.theme.ConsoleStyles())
		m.savePrefs()
		m.setNotice("theme: " + m.theme.Name)

	case key.Matches(msg, m.keys.Clear):
		m.console.Clear()
		m.setNotice("cleared")

	case key.Matches(msg, m.keys.Copy):
		if err := clipboard.WriteAll(m.console.Content()); err != nil {
			logging.Named("ui").WithError(err).Debug("clipboard copy failed")
			m.setNotice("copy failed")
		} else {
			m.setNotice("copied buffer")
		}

	case key.Matches(msg, m.keys.ToggleStdout):
		m.redirector.Set(!m.redirector.CapturingStdout(), m.redirector.CapturingStderr())
		m.setNotice(captureNotice("stdout", m.redirector.CapturingStdout()))

	case key.Matches(msg, m.keys.ToggleStderr):
		m.redirector.Set(m.redirector.CapturingStdout(), !m.redirector.CapturingStderr())
		m.setNotice(captureNotice("stderr", m.redirector.CapturingStderr()))

	default:
		var cmd tea.Cmd
		m.console, cmd = m.console.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleTick refreshes the header counters and ages out the notice.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.stats != nil {
		m.status.Stats = m.stats.Snapshot()
	}
	if m.notice != "" {
		m.noticeAge++
		if m.noticeAge >= noticeTicks {
			m.notice = ""
			m.noticeAge = 0
		}
	}
	return m, tickCmd(headerTick)
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeAge = 0
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	follow := m.console.AutoScroll()
	err := prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:      m.theme.Name,
		AutoScroll: &follow,
	})
	if err != nil {
		logging.Named("ui").WithError(err).Debug("save prefs failed")
	}
}

func captureNotice(name string, on bool) string {
	if on {
		return "capturing " + name
	}
	return name + " released"
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// NewProgram builds the Bubble Tea program without starting it, so the
// caller can hand p.Send to output producers before running.
func NewProgram(opts Options) *tea.Program {
	return tea.NewProgram(New(opts), tea.WithAltScreen())
}
