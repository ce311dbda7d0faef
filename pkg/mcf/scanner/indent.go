package scanner

// IsIndent reports whether b is a character counted as indentation.
func IsIndent(b byte) bool {
	return b == ' ' || b == '\t'
}

// LineIndent computes the indentation of the line containing the
// cursor's position: the count of leading whitespace bytes on that
// line. The caller's cursor is never moved; a clone skips backward to
// the line start and counts forward from there.
func LineIndent(c *Cursor) int {
	lc := c.Clone()
	lc.SkipBackUntil(func(x *Cursor) bool { return x.AtNewline() })
	if lc.AtNewline() {
		lc.Advance(1)
	}
	return lc.SkipWhile(IsIndent)
}
