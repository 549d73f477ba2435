// Package stream implements the writer adapter between captured output and
// the console pane.
//
// # Overview
//
// A Stream masquerades as an ordinary io.Writer so that anything expecting
// stdout or stderr can write to it. Each write is republished as an Event
// tagged with the stream's source label ("stdout", "stderr", "manual", or a
// custom tag), and the event sink forwards it onto the UI's single-consumer
// message queue.
//
// # Error Policy
//
// Write never fails from the caller's point of view. Each write walks a
// degradation ladder:
//
//  1. Deliver the event to the sink (normal path)
//  2. If the sink is absent or panics, write through to the original writer
//  3. If the write-through also fails, swallow it
//
// This is a "never crash the host" policy: an application printing a
// diagnostic must not be taken down by its own console pane. Anything
// worth recording goes to the spyglass diagnostic log, never back to the
// caller.
//
// # What Stream Does Not Do
//
// Stream keeps no copy of what passes through it. Buffering and line
// bookkeeping belong to the console pane's linebuf; an accumulation buffer
// here would grow for the life of the process with no reader.
package stream
