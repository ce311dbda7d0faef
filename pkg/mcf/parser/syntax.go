package parser

import mcfErrors "mercator-hq/callisto/pkg/mcf/errors"

// Syntax enumerates the literal tokens that define the MCF grammar.
// Every marker is a free-form string; the engine matches them literally
// with no escaping. No marker may be empty.
//
// Markers checked in the same disjunctive lookahead should be chosen so
// that none is a prefix of another; the engine resolves overlaps by a
// fixed priority order (newline first, then delimiter and body markers,
// then comment markers) and does not validate ambiguity.
type Syntax struct {
	// KeyValueDelimiter separates an option name from its value.
	KeyValueDelimiter string

	// SectionBegin ends a section header line and opens its body.
	SectionBegin string

	// LineComment starts a comment running to the end of the line.
	LineComment string

	// BlockCommentBegin and BlockCommentEnd delimit a comment that may
	// span multiple lines.
	BlockCommentBegin string
	BlockCommentEnd   string

	// LongValueBegin and LongValueEnd delimit a quoted value that may
	// span multiple lines and contain marker-like text verbatim.
	LongValueBegin string
	LongValueEnd   string

	// IncludeMarker prefixes the name of an include directive.
	IncludeMarker string
}

// DefaultSyntax returns the standard MCF marker set.
func DefaultSyntax() Syntax {
	return Syntax{
		KeyValueDelimiter: "=",
		SectionBegin:      ":",
		LineComment:       "//",
		BlockCommentBegin: "/*",
		BlockCommentEnd:   "*/",
		LongValueBegin:    `"`,
		LongValueEnd:      `"`,
		IncludeMarker:     "[include]",
	}
}

// Validate checks that no marker is empty.
func (s Syntax) Validate() error {
	for _, m := range []struct {
		name  string
		value string
	}{
		{"key/value delimiter", s.KeyValueDelimiter},
		{"section begin marker", s.SectionBegin},
		{"line comment marker", s.LineComment},
		{"block comment begin marker", s.BlockCommentBegin},
		{"block comment end marker", s.BlockCommentEnd},
		{"long value begin marker", s.LongValueBegin},
		{"long value end marker", s.LongValueEnd},
		{"include marker", s.IncludeMarker},
	} {
		if m.value == "" {
			return mcfErrors.NewSyntax(m.name + " must not be empty")
		}
	}
	return nil
}
