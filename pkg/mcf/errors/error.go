package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"mercator-hq/callisto/pkg/mcf/ast"
)

// Kind categorizes the type of error encountered during parsing.
type Kind string

const (
	// KindIndentation marks an entry indented differently from its
	// siblings' established baseline.
	KindIndentation Kind = "indentation"

	// KindUnterminatedValue marks a long-value begin marker with no
	// matching end marker before the end of input.
	KindUnterminatedValue Kind = "unterminated_value"

	// KindInclude marks a failure to resolve an include directive's
	// target through the external load capability.
	KindInclude Kind = "include"

	// KindIncludeCycle marks an include chain that reaches a source
	// name already being loaded.
	KindIncludeCycle Kind = "include_cycle"

	// KindSyntax marks an invalid syntax marker configuration.
	KindSyntax Kind = "syntax"

	// KindIO marks a source read failure outside include resolution.
	KindIO Kind = "io"

	// KindInternal marks a defensive check failure. It signals a
	// programming error, not a problem with the input.
	KindInternal Kind = "internal"
)

// Error is a located parse error.
type Error struct {
	Kind     Kind
	Message  string
	Location ast.Location

	// Found and Expected carry the indentation widths for
	// KindIndentation errors; they are zero otherwise.
	Found    int
	Expected int

	// Err is the wrapped cause, if any (include load failures).
	Err error
}

// Error implements the error interface. It returns a formatted message
// with the error kind and source location.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s", e.Kind, e.Message))
	if e.Location.IsValid() {
		sb.WriteString(fmt.Sprintf("\n  --> %s", e.Location))
	}
	return sb.String()
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewIndentation creates an indentation mismatch error: an entry is
// indented by found characters where its siblings established expected.
func NewIndentation(found, expected int, loc ast.Location) *Error {
	return &Error{
		Kind:     KindIndentation,
		Message:  fmt.Sprintf("entry indented by %d, expected %d", found, expected),
		Location: loc,
		Found:    found,
		Expected: expected,
	}
}

// NewUnterminatedValue creates an unterminated long-value error.
func NewUnterminatedValue(loc ast.Location) *Error {
	return &Error{
		Kind:     KindUnterminatedValue,
		Message:  "long value is missing its end marker",
		Location: loc,
	}
}

// NewInclude creates an include resolution failure wrapping the load
// error, located at the include directive's line in the including
// document.
func NewInclude(name string, cause error, loc ast.Location) *Error {
	return &Error{
		Kind:     KindInclude,
		Message:  fmt.Sprintf("failed to load included document %q: %v", name, cause),
		Location: loc,
		Err:      cause,
	}
}

// NewIncludeCycle creates an include cycle error for the given chain of
// source names, the last of which is already being loaded.
func NewIncludeCycle(chain []string, loc ast.Location) *Error {
	return &Error{
		Kind:     KindIncludeCycle,
		Message:  fmt.Sprintf("include cycle detected: %s", strings.Join(chain, " -> ")),
		Location: loc,
	}
}

// NewSyntax creates a syntax marker configuration error.
func NewSyntax(message string) *Error {
	return &Error{
		Kind:    KindSyntax,
		Message: message,
	}
}

// NewInternal creates an internal-state error. Seeing one of these
// means a scanning invariant was violated.
func NewInternal(message string, loc ast.Location) *Error {
	return &Error{
		Kind:     KindInternal,
		Message:  message,
		Location: loc,
	}
}

// IsKind returns true if err is or wraps an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
