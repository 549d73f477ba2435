// Package capture redirects the process-global stdout and stderr into the
// console pane.
//
// # Mechanism
//
// Go's os.Stdout and os.Stderr are package-level *os.File variables, so a
// writer adapter alone cannot intercept code that writes to them directly.
// For each captured stream the Redirector creates an os.Pipe, installs the
// write end as the global, and pumps the read end on a goroutine. Each
// chunk read from the pipe goes through a stream adapter, which publishes
// it to the sink (in practice tea.Program.Send, the UI's thread-safe event
// queue).
//
//	fmt.Println(...)            any goroutine
//	   │ writes to os.Stdout (our pipe)
//	   ▼
//	pump goroutine ──→ stream adapter ──→ sink ──→ UI update loop
//
// # Ownership
//
// The global slots are shared, mutable, process-wide state, so ownership is
// tracked explicitly: the Redirector remembers exactly which *os.File it
// installed, and restore only reverts a slot that still holds that file.
// If some later code redirected the stream again, that redirection wins and
// is left in place. The pre-capture originals are recorded once, at
// construction.
//
// At most one redirection per stream is live per Redirector; Set toggles
// each stream independently and is idempotent.
//
// # Threading
//
// All slot mutation (construct, toggle, restore) happens on the caller's
// single goroutine, the UI update loop. Pump goroutines only read pipe
// data and post events; they never touch the globals. Stopping a stream
// closes the pipe's write end without waiting: the pump may be blocked
// delivering into the very event queue the stop call runs on, so waiting
// here would wedge both sides. The pump drains whatever is left in the
// pipe and exits on its own; Wait reaps it after the event loop has shut
// down, so text written before a toggle still reaches the pane.
//
// # Stdlib log
//
// The log package captures the os.Stderr value at init, so swapping the
// global afterwards does not reach it. While stderr capture is live the
// Redirector also points log's default output at an adapter, with the same
// guarded restore.
package capture
