package ast

import "fmt"

// Location represents the source position of a parse event in the
// document being scanned. It enables precise error reporting with file
// and line information.
type Location struct {
	File string // Source name of the document being scanned
	Line int    // Line number (1-based)
}

// String returns a human-readable representation of the location.
// Format: "file:line"
func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("<unknown>:%d", l.Line)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// IsValid returns true if the location has valid file and line information.
func (l Location) IsValid() bool {
	return l.File != "" && l.Line > 0
}
