// Package console implements the console pane: a scrollable, read-only view
// of a process's captured output.
//
// # Overview
//
// The pane is a Bubble Tea component. Text reaches it as TextMsg values on
// the program's message queue (from the capture pumps, from an Appender,
// or from the host directly) and every display mutation happens inside
// Update on the single UI event loop. That queue is the whole concurrency
// story: writers never touch the pane, and the pane never blocks a writer.
//
// # Append Path
//
// Each delivered fragment walks one path:
//
//  1. Empty text: no-op
//  2. Registered callback fires (panics swallowed, no display impact)
//  3. Pane not yet sized: write through to the fallback writer
//  4. Otherwise: fold into the bounded line buffer, trim the oldest lines
//     over the cap, re-render, and follow to the bottom when auto-scroll
//     is on
//
// The append returns an internal status (appended / empty / fell back)
// that Update discards: appending never fails from a producer's point of
// view, no matter what happened inside.
//
// # Retention
//
// MaxLines (default 10000) bounds the visible buffer; the oldest lines are
// dropped first, so after heavy output the pane holds the most recent
// MaxLines lines.
//
// # Interaction
//
// The pane owns its scroll and search keys: vim-style movement, space to
// toggle follow, "/" to search with a case-insensitive regex, n/N to walk
// matches. Scrolling manually turns follow off; G turns it back on.
// Everything else (capture toggles, clear, clipboard, themes) belongs to
// the host in package ui.
package console
