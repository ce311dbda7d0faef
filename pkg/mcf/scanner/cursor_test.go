package scanner

import "testing"

func TestCursor_AtEnd_AtStart(t *testing.T) {
	c := New("ab")

	if !c.AtStart() {
		t.Error("new cursor should be at start")
	}
	if c.AtEnd() {
		t.Error("new cursor over non-empty text should not be at end")
	}

	c.Advance(2)
	if !c.AtEnd() {
		t.Error("cursor advanced past last byte should be at end")
	}

	empty := New("")
	if !empty.AtStart() || !empty.AtEnd() {
		t.Error("cursor over empty text should be at start and at end")
	}
}

func TestCursor_Matches(t *testing.T) {
	c := New("a // comment")
	c.Advance(2)

	if !c.Matches("//") {
		t.Error(`Matches("//") = false, want true`)
	}
	if c.Matches("/*") {
		t.Error(`Matches("/*") = true, want false`)
	}

	// Marker running past the buffer end must not match.
	c = New("ab")
	c.Advance(1)
	if c.Matches("bc") {
		t.Error("marker past buffer end matched")
	}
}

func TestCursor_Advance_Clamped(t *testing.T) {
	c := New("abc")
	c.Advance(100)
	if !c.AtEnd() {
		t.Error("cursor should be clamped to end")
	}
	if got := c.Offset(); got != 3 {
		t.Errorf("Offset() = %d, want 3", got)
	}
}

func TestCursor_SkipWhile(t *testing.T) {
	c := New("   abc")
	n := c.SkipWhile(func(b byte) bool { return b == ' ' })
	if n != 3 {
		t.Errorf("SkipWhile skipped %d, want 3", n)
	}
	if got := c.Byte(); got != 'a' {
		t.Errorf("Byte() = %q, want 'a'", got)
	}
}

func TestCursor_SkipUntil(t *testing.T) {
	c := New("name = value")
	n := c.SkipUntil(func(x *Cursor) bool { return x.Matches("=") })
	if n != 5 {
		t.Errorf("SkipUntil skipped %d, want 5", n)
	}
	if !c.Matches("=") {
		t.Error("cursor should stop on the marker")
	}

	// Predicate never satisfied: runs to end.
	c = New("abc")
	n = c.SkipUntil(func(x *Cursor) bool { return x.Matches("z") })
	if n != 3 || !c.AtEnd() {
		t.Errorf("SkipUntil = %d (atEnd=%v), want 3 at end", n, c.AtEnd())
	}
}

func TestCursor_SkipBackUntil(t *testing.T) {
	c := New("one\ntwo")
	c.Advance(6) // on 'o' of "two"

	c.SkipBackUntil(func(x *Cursor) bool { return x.AtNewline() })
	if !c.AtNewline() {
		t.Error("cursor should stop on the newline")
	}
	if got := c.Offset(); got != 3 {
		t.Errorf("Offset() = %d, want 3", got)
	}

	// No newline before the position: stops at buffer start.
	c = New("abc")
	c.Advance(2)
	c.SkipBackUntil(func(x *Cursor) bool { return x.AtNewline() })
	if !c.AtStart() {
		t.Error("cursor should stop at buffer start")
	}
}

func TestCursor_Clone_Independent(t *testing.T) {
	c := New("abcdef")
	c.Advance(2)

	clone := c.Clone()
	clone.Advance(3)

	if got := c.Offset(); got != 2 {
		t.Errorf("original Offset() = %d after clone moved, want 2", got)
	}
	if got := clone.Offset(); got != 5 {
		t.Errorf("clone Offset() = %d, want 5", got)
	}
}

func TestCursor_LineNumber(t *testing.T) {
	c := New("one\ntwo\nthree")

	if got := c.LineNumber(); got != 1 {
		t.Errorf("LineNumber() at start = %d, want 1", got)
	}

	c.Advance(5) // inside "two"
	if got := c.LineNumber(); got != 2 {
		t.Errorf("LineNumber() = %d, want 2", got)
	}

	c.Advance(100)
	if got := c.LineNumber(); got != 3 {
		t.Errorf("LineNumber() at end = %d, want 3", got)
	}
}

func TestCursor_SliceFrom(t *testing.T) {
	c := New("name = value")
	start := c.Clone()
	c.SkipUntil(func(x *Cursor) bool { return x.Matches("=") })

	if got := c.SliceFrom(start); got != "name " {
		t.Errorf("SliceFrom() = %q, want %q", got, "name ")
	}
}

func TestCursor_Byte_AtEnd(t *testing.T) {
	c := New("x")
	c.Advance(1)
	if got := c.Byte(); got != 0 {
		t.Errorf("Byte() at end = %d, want 0", got)
	}
}
