package scanner

import "strings"

// Cursor is a read-only logical position within an immutable text
// buffer. Cloning a cursor yields an independent position over the same
// buffer, so speculative lookahead never disturbs a still-needed
// position.
type Cursor struct {
	text string
	pos  int
}

// New creates a cursor at the start of text.
func New(text string) *Cursor {
	return &Cursor{text: text}
}

// Clone returns an independent cursor at the same position.
func (c *Cursor) Clone() *Cursor {
	clone := *c
	return &clone
}

// AtEnd returns true if the cursor is past the last byte of the buffer.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.text)
}

// AtStart returns true if the cursor is at the first byte of the buffer.
func (c *Cursor) AtStart() bool {
	return c.pos == 0
}

// AtNewline returns true if the byte at the current position is the
// newline character.
func (c *Cursor) AtNewline() bool {
	return !c.AtEnd() && c.text[c.pos] == '\n'
}

// Byte returns the byte at the current position, or 0 at end of buffer.
func (c *Cursor) Byte() byte {
	if c.AtEnd() {
		return 0
	}
	return c.text[c.pos]
}

// Offset returns the current byte offset into the buffer.
func (c *Cursor) Offset() int {
	return c.pos
}

// Matches returns true if marker occurs literally starting at the
// current position. A marker that would run past the end of the buffer
// does not match.
func (c *Cursor) Matches(marker string) bool {
	return strings.HasPrefix(c.text[c.pos:], marker)
}

// Advance moves the position forward by n bytes, clamped to the end of
// the buffer.
func (c *Cursor) Advance(n int) {
	c.pos += n
	if c.pos > len(c.text) {
		c.pos = len(c.text)
	}
}

// SkipWhile advances one byte at a time while pred holds for the current
// byte and the end of the buffer has not been reached. It returns the
// number of bytes advanced.
func (c *Cursor) SkipWhile(pred func(byte) bool) int {
	n := 0
	for !c.AtEnd() && pred(c.text[c.pos]) {
		c.pos++
		n++
	}
	return n
}

// SkipUntil advances one byte at a time until pred holds or the end of
// the buffer is reached. The predicate is evaluated against the live
// cursor, so it may itself call Matches or AtNewline. It returns the
// number of bytes advanced.
func (c *Cursor) SkipUntil(pred func(*Cursor) bool) int {
	n := 0
	for !c.AtEnd() && !pred(c) {
		c.pos++
		n++
	}
	return n
}

// SkipBackUntil is the backward mirror of SkipUntil: it moves one byte
// at a time toward the start of the buffer until pred holds or the
// start is reached. It returns the number of bytes moved.
func (c *Cursor) SkipBackUntil(pred func(*Cursor) bool) int {
	n := 0
	for !c.AtStart() && !pred(c) {
		c.pos--
		n++
	}
	return n
}

// LineNumber returns the 1-based line number of the current position,
// computed on demand by counting newlines before the position.
func (c *Cursor) LineNumber() int {
	return strings.Count(c.text[:c.pos], "\n") + 1
}

// SliceFrom returns the literal text between the position recorded by
// start and the current position. Both cursors must view the same
// buffer and start must not be past the current position.
func (c *Cursor) SliceFrom(start *Cursor) string {
	return c.text[start.pos:c.pos]
}
