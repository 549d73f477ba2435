// Package linebuf provides a bounded line buffer for console output.
//
// # Overview
//
// Captured output arrives as arbitrary byte chunks: a single write may carry
// several lines, a fragment of one, or both. Buffer folds those chunks into
// a line-oriented view and enforces a maximum retained line count so the
// console pane cannot grow without bound.
//
// # Partial Lines
//
// A chunk that does not end in a newline leaves an unterminated partial
// line. The partial is displayed like any other line (progress meters and
// prompts rely on this) and is extended in place by subsequent chunks until
// a newline completes it:
//
//	b.Append("down")      // visible: "down"
//	b.Append("loading\n") // visible: "downloading"
//	b.Append("done\n")    // visible: "downloading", "done"
//
// # Trimming
//
// When the visible line count exceeds the cap, the oldest completed lines
// are dropped. The newest content is always retained, so with a cap of 3
// and writes "a\n" "b\n" "c\n" "d\n" the buffer holds exactly b, c, d.
//
// Trimming reallocates rather than re-slicing so dropped lines are actually
// released to the garbage collector.
//
// # Concurrency
//
// Buffer is not safe for concurrent use. The console pane owns one and
// mutates it only from the Bubble Tea update loop; cross-goroutine delivery
// happens upstream via the program's message queue.
package linebuf
