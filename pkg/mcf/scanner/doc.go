// Package scanner provides the character cursor used to scan MCF text.
//
// A Cursor is a position within an immutable text buffer. It supports
// literal marker matching, conditional forward and backward skipping,
// cheap snapshot-by-copy cloning, and on-demand line number computation.
// The cursor has no knowledge of the grammar; the parser expresses all
// scanning in terms of predicates evaluated against a live cursor.
//
// Scanning is byte-at-a-time rather than regular-expression based:
// syntax markers are runtime-configurable strings of arbitrary length,
// and the grammar needs position-preserving lookahead and lookback
// (for example, computing the indentation of the current line without
// disturbing the parse position).
//
// The buffer is expected to be newline-normalized before scanning: every
// line terminator is a single '\n'. See the source package for the
// normalization pre-pass.
package scanner
