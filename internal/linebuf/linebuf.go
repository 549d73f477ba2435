package linebuf

import "strings"

// Buffer accumulates console output chunk by chunk and retains at most
// maxLines of it, dropping the oldest lines first. A chunk that does not end
// in a newline leaves a partial line that subsequent chunks extend.
type Buffer struct {
	maxLines int
	lines    []string
	partial  string
	dirty    bool
}

// New returns a buffer capped at maxLines. Values <= 0 leave the buffer
// unbounded.
func New(maxLines int) *Buffer {
	return &Buffer{maxLines: maxLines}
}

// Append splits text into lines and folds it into the buffer, trimming the
// oldest lines if the cap is exceeded. Empty text is a no-op.
func (b *Buffer) Append(text string) {
	if text == "" {
		return
	}
	b.dirty = true

	segs := strings.Split(b.partial+text, "\n")
	b.partial = segs[len(segs)-1]
	b.lines = append(b.lines, segs[:len(segs)-1]...)
	b.trim()
}

// trim drops completed lines beyond the cap. The partial line counts toward
// the total but is never dropped; it is the newest content.
func (b *Buffer) trim() {
	if b.maxLines <= 0 {
		return
	}
	if overflow := b.Len() - b.maxLines; overflow > 0 {
		if overflow > len(b.lines) {
			overflow = len(b.lines)
		}
		b.lines = append([]string(nil), b.lines[overflow:]...)
	}
}

// Len reports the number of visible lines, counting a non-empty partial line.
func (b *Buffer) Len() int {
	n := len(b.lines)
	if b.partial != "" {
		n++
	}
	return n
}

// Lines returns a copy of the visible lines in write order.
func (b *Buffer) Lines() []string {
	out := make([]string, 0, b.Len())
	out = append(out, b.lines...)
	if b.partial != "" {
		out = append(out, b.partial)
	}
	return out
}

// String reproduces the visible buffer as displayed.
func (b *Buffer) String() string {
	if b.partial == "" {
		return strings.Join(b.lines, "\n")
	}
	if len(b.lines) == 0 {
		return b.partial
	}
	return strings.Join(b.lines, "\n") + "\n" + b.partial
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.lines = nil
	b.partial = ""
	b.dirty = true
}

// SetMaxLines changes the cap and re-trims immediately.
func (b *Buffer) SetMaxLines(maxLines int) {
	b.maxLines = maxLines
	prior := len(b.lines)
	b.trim()
	if len(b.lines) != prior {
		b.dirty = true
	}
}

// Dirty reports whether the buffer changed since the last call and resets
// the flag. The UI uses this to skip re-rendering unchanged content.
func (b *Buffer) Dirty() bool {
	d := b.dirty
	b.dirty = false
	return d
}
