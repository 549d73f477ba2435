package capture

import (
	"io"
	"log"
	"os"

	"github.com/five82/spyglass/internal/stats"
	"github.com/five82/spyglass/internal/stream"
)

const pumpBufferSize = 4096

// Options configure a Redirector.
type Options struct {
	// Sink receives every captured write. Required for capture to be useful;
	// with a nil sink everything degrades to write-through.
	Sink stream.Sink

	// Stats optionally records per-source traffic counters.
	Stats *stats.Store
}

// Redirector owns the process-global stdout/stderr slots. For each captured
// stream it installs an os.Pipe write end as the global stream and pumps the
// read end into the sink through a stream adapter.
//
// All methods must be called from a single goroutine (in practice the Bubble
// Tea update loop); only the pump goroutines run concurrently and they never
// touch the global slots.
type Redirector struct {
	sink  stream.Sink
	stats *stats.Store

	// Pre-capture originals, recorded once at construction.
	origStdout *os.File
	origStderr *os.File
	origLogOut io.Writer

	stdout *redirection
	stderr *redirection

	// Stopped pumps still draining their pipes. Reaped by Wait.
	draining []*redirection

	logStream *stream.Stream
}

// redirection tracks one live captured stream.
type redirection struct {
	pipeR *os.File
	pipeW *os.File
	done  chan struct{}
}

// New records the current global streams as the restore targets. No capture
// is started until Set is called.
func New(opts Options) *Redirector {
	return &Redirector{
		sink:       opts.Sink,
		stats:      opts.Stats,
		origStdout: os.Stdout,
		origStderr: os.Stderr,
		origLogOut: log.Writer(),
	}
}

// OriginalStdout returns the stdout writer that was live before capture.
func (r *Redirector) OriginalStdout() *os.File { return r.origStdout }

// OriginalStderr returns the stderr writer that was live before capture.
func (r *Redirector) OriginalStderr() *os.File { return r.origStderr }

// CapturingStdout reports whether stdout is currently redirected.
func (r *Redirector) CapturingStdout() bool { return r.stdout != nil }

// CapturingStderr reports whether stderr is currently redirected.
func (r *Redirector) CapturingStderr() bool { return r.stderr != nil }

// Set toggles capture per stream. Enabling an already-captured stream or
// disabling an uncaptured one is a no-op. Errors creating a pipe leave the
// global stream untouched; the pane simply misses that stream.
func (r *Redirector) Set(stdout, stderr bool) {
	if stdout && r.stdout == nil {
		r.stdout = r.start(stream.Stdout, r.origStdout, func(f *os.File) { os.Stdout = f })
	} else if !stdout && r.stdout != nil {
		r.stop(r.stdout, func() *os.File { return os.Stdout }, func(f *os.File) { os.Stdout = f }, r.origStdout)
		r.stdout = nil
	}

	if stderr && r.stderr == nil {
		r.stderr = r.start(stream.Stderr, r.origStderr, func(f *os.File) { os.Stderr = f })
		r.mirrorLog()
	} else if !stderr && r.stderr != nil {
		r.stop(r.stderr, func() *os.File { return os.Stderr }, func(f *os.File) { os.Stderr = f }, r.origStderr)
		r.stderr = nil
		r.unmirrorLog()
	}
}

// Restore reverts both streams to their pre-capture originals. Safe to call
// repeatedly; invoked on UI teardown.
func (r *Redirector) Restore() {
	r.Set(false, false)
}

// start installs a pipe as the global stream and launches its pump.
func (r *Redirector) start(source stream.Source, original *os.File, set func(*os.File)) *redirection {
	pr, pw, err := os.Pipe()
	if err != nil {
		return nil
	}
	red := &redirection{pipeR: pr, pipeW: pw, done: make(chan struct{})}
	set(pw)

	adapter := stream.New(original, source, r.sink)
	go r.pump(red, adapter)
	return red
}

// stop reverts the global stream if it is still ours, then closes the
// pipe's write end. A later redirector that took over the slot keeps it.
//
// stop must not wait for the pump: it runs on the UI event loop, and the
// pump may at this moment be mid-delivery into that same loop's queue.
// The pump drains the remaining pipe contents on its own and is reaped by
// Wait once the loop is no longer a delivery target.
func (r *Redirector) stop(red *redirection, get func() *os.File, set func(*os.File), original *os.File) {
	if get() == red.pipeW {
		set(original)
	}
	_ = red.pipeW.Close()
	r.draining = append(r.draining, red)
}

// Wait blocks until every stopped pump has drained its pipe and exited.
// Call it only after the UI event loop has stopped consuming, or in tests
// with a sink that never blocks; a live pump may be waiting on that loop
// to accept its next event.
func (r *Redirector) Wait() {
	for _, red := range r.draining {
		<-red.done
	}
	r.draining = nil
}

// pump forwards pipe reads into the adapter until the write end closes.
func (r *Redirector) pump(red *redirection, adapter *stream.Stream) {
	defer close(red.done)
	defer red.pipeR.Close()

	buf := make([]byte, pumpBufferSize)
	for {
		n, err := red.pipeR.Read(buf)
		if n > 0 {
			_, _ = adapter.Write(buf[:n])
			if r.stats != nil {
				r.stats.Record(adapter.Source(), n)
			}
		}
		if err != nil {
			return
		}
	}
}

// mirrorLog points the stdlib logger at the captured stderr stream. The log
// package holds the writer value it was created with, so swapping the
// os.Stderr global alone does not reach it.
func (r *Redirector) mirrorLog() {
	r.logStream = stream.New(r.origStderr, stream.Stderr, r.sink)
	log.SetOutput(r.logStream)
}

// unmirrorLog restores the stdlib logger output, guarded the same way as
// the stream slots: only if it still points at our adapter.
func (r *Redirector) unmirrorLog() {
	if r.logStream == nil {
		return
	}
	if log.Writer() == io.Writer(r.logStream) {
		log.SetOutput(r.origLogOut)
	}
	r.logStream = nil
}
