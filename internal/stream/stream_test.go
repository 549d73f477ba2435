package stream

import (
	"bytes"
	"errors"
	"testing"
)

func TestWritePublishesEvent(t *testing.T) {
	var got []Event
	s := New(nil, Stdout, func(ev Event) { got = append(got, ev) })

	n, err := s.Write([]byte("hello\n"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 6 {
		t.Fatalf("Write() n = %d, want 6", n)
	}
	if len(got) != 1 {
		t.Fatalf("sink received %d events, want 1", len(got))
	}
	if got[0].Text != "hello\n" || got[0].Source != Stdout {
		t.Fatalf("event = %+v", got[0])
	}
}

func TestEmptyWriteNoEvent(t *testing.T) {
	calls := 0
	s := New(nil, Stderr, func(Event) { calls++ })

	n, err := s.Write(nil)
	if err != nil || n != 0 {
		t.Fatalf("Write(nil) = (%d, %v), want (0, nil)", n, err)
	}
	if calls != 0 {
		t.Fatalf("sink called %d times for empty write, want 0", calls)
	}
}

func TestWriteOrderPreserved(t *testing.T) {
	var got []string
	s := New(nil, Stdout, func(ev Event) { got = append(got, ev.Text) })

	for _, text := range []string{"a\n", "b\n", "c\n"} {
		if _, err := s.Write([]byte(text)); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	want := []string{"a\n", "b\n", "c\n"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSinkPanicFallsBack(t *testing.T) {
	var original bytes.Buffer
	s := New(&original, Stdout, func(Event) { panic("sink gone") })

	n, err := s.Write([]byte("oops\n"))
	if err != nil {
		t.Fatalf("Write() error = %v, want nil despite sink panic", err)
	}
	if n != 5 {
		t.Fatalf("Write() n = %d, want 5", n)
	}
	if got := original.String(); got != "oops\n" {
		t.Fatalf("fallback wrote %q, want %q", got, "oops\n")
	}
}

func TestNilSinkFallsBack(t *testing.T) {
	var original bytes.Buffer
	s := New(&original, Stderr, nil)

	if _, err := s.Write([]byte("direct\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := original.String(); got != "direct\n" {
		t.Fatalf("fallback wrote %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestFallbackFailureSwallowed(t *testing.T) {
	s := New(failingWriter{}, Stdout, nil)

	n, err := s.Write([]byte("x"))
	if err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}
	if n != 1 {
		t.Fatalf("Write() n = %d, want 1", n)
	}
}

func TestNoOriginalNoSink(t *testing.T) {
	s := New(nil, Stdout, nil)
	if _, err := s.Write([]byte("void")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
}

type flushRecorder struct {
	bytes.Buffer
	flushed int
}

func (f *flushRecorder) Flush() error {
	f.flushed++
	return nil
}

func TestFlushDelegates(t *testing.T) {
	rec := &flushRecorder{}
	s := New(rec, Stdout, nil)
	s.Flush()
	if rec.flushed != 1 {
		t.Fatalf("Flush delegated %d times, want 1", rec.flushed)
	}

	// No original: Flush is a no-op, not a panic.
	New(nil, Stdout, nil).Flush()
}

func TestIsTTY(t *testing.T) {
	if New(nil, Stdout, nil).IsTTY() {
		t.Fatal("IsTTY() = true, want false")
	}
}

func TestSourceLabel(t *testing.T) {
	if got := New(nil, Stderr, nil).Source(); got != Stderr {
		t.Fatalf("Source() = %q, want %q", got, Stderr)
	}
	custom := New(nil, Source("worker"), nil)
	if got := custom.Source(); got != "worker" {
		t.Fatalf("Source() = %q, want worker", got)
	}
}
