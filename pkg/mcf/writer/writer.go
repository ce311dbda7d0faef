package writer

import (
	"io"
	"strings"

	"mercator-hq/callisto/pkg/mcf/ast"
	"mercator-hq/callisto/pkg/mcf/parser"
)

// Writer renders a document tree as MCF text.
type Writer struct {
	syntax parser.Syntax
	indent string
}

// New creates a writer using the default syntax markers and four-space
// indentation.
func New() *Writer {
	return &Writer{
		syntax: parser.DefaultSyntax(),
		indent: "    ",
	}
}

// WithSyntax sets the syntax markers used for output.
func (w *Writer) WithSyntax(s parser.Syntax) *Writer {
	w.syntax = s
	return w
}

// WithIndent sets the indentation unit written per nesting level.
func (w *Writer) WithIndent(indent string) *Writer {
	w.indent = indent
	return w
}

// Write renders the contents of sec (without a header line for sec
// itself) to out. Passing a document's root section serializes the
// whole document.
func (w *Writer) Write(out io.Writer, sec *ast.Section) error {
	_, err := io.WriteString(out, w.Render(sec))
	return err
}

// Render returns the contents of sec as MCF text.
func (w *Writer) Render(sec *ast.Section) string {
	var b strings.Builder
	w.writeBody(&b, sec, 0)
	return b.String()
}

func (w *Writer) writeBody(b *strings.Builder, sec *ast.Section, depth int) {
	prefix := strings.Repeat(w.indent, depth)

	for _, opt := range sec.Options {
		b.WriteString(prefix)
		b.WriteString(opt.Name)
		if opt.Value != "" {
			b.WriteString(" ")
			b.WriteString(w.syntax.KeyValueDelimiter)
			b.WriteString(" ")
			b.WriteString(w.quoteIfNeeded(opt.Value))
		}
		b.WriteString("\n")
	}

	for _, child := range sec.Sections {
		b.WriteString(prefix)
		b.WriteString(child.Name)
		b.WriteString(w.syntax.SectionBegin)
		b.WriteString("\n")
		w.writeBody(b, child, depth+1)
	}
}

// quoteIfNeeded wraps value in the long-value markers when writing it
// plainly would change its meaning on re-parse.
func (w *Writer) quoteIfNeeded(value string) string {
	syn := w.syntax
	needs := strings.Contains(value, "\n") ||
		strings.Contains(value, syn.LineComment) ||
		strings.Contains(value, syn.BlockCommentBegin) ||
		value != strings.TrimSpace(value)
	if !needs {
		return value
	}
	return syn.LongValueBegin + value + syn.LongValueEnd
}
