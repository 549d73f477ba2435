// Package stats provides thread-safe capture statistics for the UI header.
//
// # Overview
//
// The capture pumps run on their own goroutines and record every delivered
// write; the UI reads an immutable snapshot once per tick to render the
// per-source byte and write counts in the header. The Store mediates
// between the two with a readers-writer lock, following the same
// producer-consumer shape as the rest of the application:
//
//	Producers (pipe pumps):        Consumer (UI tick):
//	store.Record(source, n)  ───→  store.Snapshot()
//
// Snapshots are plain value copies, so the UI can hold one across a render
// without racing the pumps. The Store is safe to use from its zero value.
//
// # Scope
//
// Counters only. The captured text itself never passes through this
// package; it travels on the program's message queue straight to the
// console pane.
package stats
