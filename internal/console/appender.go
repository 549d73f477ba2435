package console

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/spyglass/internal/stats"
	"github.com/five82/spyglass/internal/stream"
)

// sender is the slice of tea.Program the appender needs.
type sender interface {
	Send(tea.Msg)
}

// Appender posts manual text onto the program's message queue. It is the
// off-loop counterpart to Model.Append: safe from any goroutine, because
// tea.Program.Send is the single thread-safe entry to the update loop.
type Appender struct {
	target sender
	stats  *stats.Store
}

// NewAppender binds an appender to a running program. The stats store may
// be nil; when present, manual traffic is counted alongside the captured
// streams so the header totals match what the pane shows.
func NewAppender(p *tea.Program, st *stats.Store) *Appender {
	a := &Appender{stats: st}
	if p != nil {
		a.target = p
	}
	return a
}

// Append posts text with the "manual" source label. A nil appender or
// program drops the text silently.
func (a *Appender) Append(text string) {
	a.AppendFrom(text, stream.Manual)
}

// AppendFrom posts text under an explicit source label.
func (a *Appender) AppendFrom(text string, source stream.Source) {
	if a == nil || a.target == nil || text == "" {
		return
	}
	if a.stats != nil {
		a.stats.Record(source, len(text))
	}
	a.target.Send(TextMsg{Text: text, Source: source})
}

// Sink adapts the appender to the capture sink signature, so captured
// stream events and manual appends share one delivery path.
func Sink(p *tea.Program) stream.Sink {
	return func(ev stream.Event) {
		p.Send(TextMsg{Text: ev.Text, Source: ev.Source})
	}
}
