// Package app provides the orchestration layer for spyglass.
//
// # Overview
//
// This package wires together configuration, logging, stream capture, and
// the UI to create the complete spyglass experience. It is the composition
// root where all dependencies are initialized and connected.
//
// # Architecture
//
// Run follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/spyglass/config.toml
//  2. Point the diagnostic log at its file (never the captured streams)
//  3. Create the shared stats.Store and the capture.Redirector
//  4. Build the Bubble Tea program and bind the capture sink to it
//  5. Start the TUI and block until the user exits or the context cancels
//  6. Restore the original stdout and stderr on the way out
//
// # Wiring Order
//
// The capture sink must point at tea.Program.Send, but the program cannot
// exist until the model is built, and the model needs the redirector. The
// sinkHolder breaks the cycle: the redirector delivers into the holder, and
// the holder is bound to the program once it exists. Capture itself is not
// installed until the UI's first layout, which happens after binding, so no
// captured write can observe an unbound sink.
//
// # Demo Mode
//
// When demo mode is enabled, a background emitter prints sample lines on
// stdout, stderr, and the stdlib logger so the pane has traffic to show.
// It starts from the UI's OnReady hook, after capture is installed, and
// stops when the run context is cancelled.
//
// # Error Handling
//
// Fatal errors (returned from Run): a malformed configuration file, or the
// UI failing to start. Everything else degrades: a broken log file leaves
// diagnostics disabled, and capture failures fall back to write-through so
// output is never lost.
package app
