package stream

import "io"

// Source identifies where a fragment of console text came from.
type Source string

// Well-known sources. Custom labels are allowed for additional streams.
const (
	Stdout Source = "stdout"
	Stderr Source = "stderr"
	Manual Source = "manual"
)

// Event carries one write from a captured stream to the console pane.
type Event struct {
	Text   string
	Source Source
}

// Sink receives events from a Stream. Implementations are expected to hand
// the event to the UI's message queue and must not block the writer.
type Sink func(Event)

// Stream is an io.Writer that republishes everything written to it as
// events on a sink, tagged with a source label. When the sink is missing or
// fails, writes degrade to the displaced original writer; callers always
// see a full successful write. Stream never returns an error.
type Stream struct {
	original io.Writer
	source   Source
	sink     Sink
}

// New returns a stream that publishes to sink under the given source label.
// original is the writer this stream displaces; it is the fallback target
// and the flush delegate. Both original and sink may be nil.
func New(original io.Writer, source Source, sink Sink) *Stream {
	return &Stream{original: original, source: source, sink: sink}
}

// Source returns the stream's source label.
func (s *Stream) Source() Source {
	return s.source
}

// Write publishes p as an event. Empty writes produce no event. Delivery
// failure falls back to the original writer; failure of the fallback is
// swallowed. The return values never report an error: a console pane must
// not turn printing into a crash.
func (s *Stream) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if !s.deliver(Event{Text: string(p), Source: s.source}) {
		s.writeThrough(p)
	}
	return len(p), nil
}

// deliver invokes the sink, converting a panic into a failed delivery.
func (s *Stream) deliver(ev Event) (ok bool) {
	if s.sink == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	s.sink(ev)
	return true
}

// writeThrough writes to the original stream, ignoring all failures.
func (s *Stream) writeThrough(p []byte) {
	if s.original == nil {
		return
	}
	defer func() { _ = recover() }()
	_, _ = s.original.Write(p)
}

// Flush delegates to the original writer when it supports flushing.
func (s *Stream) Flush() {
	type flusher interface{ Flush() error }
	type syncer interface{ Sync() error }

	switch w := s.original.(type) {
	case flusher:
		_ = w.Flush()
	case syncer:
		_ = w.Sync()
	}
}

// IsTTY reports whether the stream is an interactive terminal. It never is.
func (s *Stream) IsTTY() bool {
	return false
}

var _ io.Writer = (*Stream)(nil)
