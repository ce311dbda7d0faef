package parser

import (
	"fmt"
	"strings"

	"mercator-hq/callisto/pkg/mcf/ast"
	mcfErrors "mercator-hq/callisto/pkg/mcf/errors"
	"mercator-hq/callisto/pkg/mcf/scanner"
)

// Loader resolves an include target or a top-level source name to its
// full, newline-normalized text content.
type Loader interface {
	Load(name string) (string, error)
}

// rootIndent is the parent indentation sentinel for the document root:
// every real entry is indented at least 0, so the root accepts any
// first entry.
const rootIndent = -1

// defaultMaxIncludeDepth bounds include nesting independently of cycle
// detection.
const defaultMaxIncludeDepth = 32

// Parser parses MCF text into a document tree. Configure it fluently,
// then share freely; all per-parse state lives in per-call structures.
type Parser struct {
	syntax          Syntax
	procs           Processors
	loader          Loader
	maxIncludeDepth int
}

// NewParser creates a parser with the default syntax markers, trimming
// post-processors, no loader, and the default include depth limit.
func NewParser() *Parser {
	return &Parser{
		syntax:          DefaultSyntax(),
		procs:           DefaultProcessors(),
		maxIncludeDepth: defaultMaxIncludeDepth,
	}
}

// WithSyntax sets the syntax markers.
func (p *Parser) WithSyntax(s Syntax) *Parser {
	p.syntax = s
	return p
}

// WithProcessors sets the name/value post-processors. Nil members keep
// the trimming defaults.
func (p *Parser) WithProcessors(procs Processors) *Parser {
	p.procs = procs.withDefaults()
	return p
}

// WithLoader sets the external load capability used for ParseFile and
// for resolving include directives.
func (p *Parser) WithLoader(loader Loader) *Parser {
	p.loader = loader
	return p
}

// WithMaxIncludeDepth sets the maximum include nesting depth.
func (p *Parser) WithMaxIncludeDepth(depth int) *Parser {
	p.maxIncludeDepth = depth
	return p
}

// ParseString parses newline-normalized text into a new document tree.
// sourceName identifies the document in errors and include chains.
func (p *Parser) ParseString(text, sourceName string) (*ast.Document, error) {
	if err := p.syntax.Validate(); err != nil {
		return nil, err
	}
	doc := ast.NewDocument(sourceName, ast.NewOwner())
	if err := p.parseInto(doc, text, nil); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseBytes parses newline-normalized text from a byte slice.
func (p *Parser) ParseBytes(data []byte, sourceName string) (*ast.Document, error) {
	return p.ParseString(string(data), sourceName)
}

// ParseFile loads name through the configured Loader and parses it.
func (p *Parser) ParseFile(name string) (*ast.Document, error) {
	if p.loader == nil {
		return nil, mcfErrors.NewSyntax("no loader configured")
	}
	text, err := p.loader.Load(name)
	if err != nil {
		return nil, &mcfErrors.Error{
			Kind:     mcfErrors.KindIO,
			Message:  fmt.Sprintf("failed to load document %q: %v", name, err),
			Location: ast.Location{File: name},
			Err:      err,
		}
	}
	return p.ParseString(text, name)
}

// parseInto populates doc from text. chain holds the source names of
// the documents currently being loaded above doc.
func (p *Parser) parseInto(doc *ast.Document, text string, chain []string) error {
	r := &run{
		parser: p,
		doc:    doc,
		cursor: scanner.New(text),
		chain:  appendChain(chain, doc.SourceName),
	}
	return r.section(&doc.Section, rootIndent)
}

func appendChain(chain []string, name string) []string {
	out := make([]string, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, name)
}

// run is the state of a single document parse: one cursor over one
// buffer, plus the active include chain.
type run struct {
	parser *Parser
	doc    *ast.Document
	cursor *scanner.Cursor
	chain  []string
}

// loc captures the current scan position for error reporting.
func (r *run) loc() ast.Location {
	return ast.Location{File: r.doc.SourceName, Line: r.cursor.LineNumber()}
}

// section consumes the entries of sec until it reaches an entry at or
// below parentIndent, or the end of input. The indentation of the first
// entry becomes the fixed baseline for every direct entry of sec.
func (r *run) section(sec *ast.Section, parentIndent int) error {
	baseline := rootIndent
	lastOffset := -1
	for {
		r.skipInsignificant()
		if r.cursor.AtEnd() {
			return nil
		}
		if r.cursor.Offset() == lastOffset {
			return mcfErrors.NewInternal("scan position stalled", r.loc())
		}
		lastOffset = r.cursor.Offset()

		indent := scanner.LineIndent(r.cursor)
		if indent <= parentIndent {
			// Belongs to an ancestor or a sibling of the parent; leave
			// it for the caller to re-evaluate at its own level.
			return nil
		}
		if baseline == rootIndent {
			baseline = indent
		} else if indent != baseline {
			return mcfErrors.NewIndentation(indent, baseline, r.loc())
		}

		if err := r.entry(sec, baseline); err != nil {
			return err
		}
	}
}

// entry parses one direct entry of sec: an option, a nested section, or
// an include directive.
func (r *run) entry(sec *ast.Section, baseline int) error {
	syn := r.parser.syntax
	procs := r.parser.procs

	start := r.cursor.Clone()
	r.cursor.SkipUntil(func(c *scanner.Cursor) bool {
		return c.AtNewline() ||
			c.Matches(syn.KeyValueDelimiter) ||
			c.Matches(syn.SectionBegin) ||
			c.Matches(syn.LineComment) ||
			c.Matches(syn.BlockCommentBegin)
	})
	rawName := r.cursor.SliceFrom(start)

	switch {
	case r.cursor.AtEnd() || r.cursor.AtNewline():
		sec.AddOption(&ast.Option{
			Name:  procs.OptionName(rawName),
			Value: procs.OptionValue(""),
			Owner: sec.Owner,
		})

	case r.cursor.Matches(syn.KeyValueDelimiter):
		r.cursor.Advance(len(syn.KeyValueDelimiter))
		rawValue, err := r.value()
		if err != nil {
			return err
		}
		if trimmed := strings.TrimLeft(rawName, " \t"); strings.HasPrefix(trimmed, syn.IncludeMarker) {
			return r.include(sec, trimmed[len(syn.IncludeMarker):], rawValue)
		}
		sec.AddOption(&ast.Option{
			Name:  procs.OptionName(rawName),
			Value: procs.OptionValue(rawValue),
			Owner: sec.Owner,
		})

	case r.cursor.Matches(syn.SectionBegin):
		r.cursor.Advance(len(syn.SectionBegin))
		child := ast.NewSection("", sec.Owner)
		if err := r.section(child, baseline); err != nil {
			return err
		}
		child.Name = procs.SectionName(rawName)
		sec.AddSection(child)

	default:
		// Stopped at a comment marker: a value-less option.
		sec.AddOption(&ast.Option{
			Name:  procs.OptionName(rawName),
			Value: procs.OptionValue(""),
			Owner: sec.Owner,
		})
	}
	return nil
}

// value extracts the raw text of an option value. A long value is
// scanned only for its end marker, so it may span lines and contain
// comment- or delimiter-like text verbatim. The result is returned
// unprocessed; the call site decides which post-processor applies.
func (r *run) value() (string, error) {
	syn := r.parser.syntax

	start := r.cursor.Clone()
	r.cursor.SkipUntil(func(c *scanner.Cursor) bool {
		return c.AtNewline() ||
			c.Matches(syn.LongValueBegin) ||
			c.Matches(syn.LineComment) ||
			c.Matches(syn.BlockCommentBegin)
	})

	if !r.cursor.Matches(syn.LongValueBegin) {
		return r.cursor.SliceFrom(start), nil
	}

	r.cursor.Advance(len(syn.LongValueBegin))
	inner := r.cursor.Clone()
	r.cursor.SkipUntil(func(c *scanner.Cursor) bool {
		return c.Matches(syn.LongValueEnd)
	})
	if !r.cursor.Matches(syn.LongValueEnd) {
		return "", mcfErrors.NewUnterminatedValue(r.loc())
	}
	raw := r.cursor.SliceFrom(inner)
	r.cursor.Advance(len(syn.LongValueEnd))
	return raw, nil
}

// include resolves an include directive: rawName is the directive name
// after the include marker, rawValue the unprocessed include target.
// The loaded document shares the owner of the including tree and is
// attached as a child section of sec.
func (r *run) include(sec *ast.Section, rawName, rawValue string) error {
	p := r.parser
	procs := p.procs
	name := procs.IncludeFile(rawValue)

	if p.loader == nil {
		return mcfErrors.NewInclude(name, fmt.Errorf("no loader configured"), r.loc())
	}
	if len(r.chain) >= p.maxIncludeDepth {
		return mcfErrors.NewInclude(name,
			fmt.Errorf("include depth limit %d exceeded", p.maxIncludeDepth), r.loc())
	}
	for _, ancestor := range r.chain {
		if ancestor == name {
			return mcfErrors.NewIncludeCycle(appendChain(r.chain, name), r.loc())
		}
	}

	text, err := p.loader.Load(name)
	if err != nil {
		return mcfErrors.NewInclude(name, err, r.loc())
	}

	doc := ast.NewDocument(name, sec.Owner)
	if err := p.parseInto(doc, text, r.chain); err != nil {
		return err
	}
	doc.Name = procs.SectionName(rawName)

	r.doc.Includes = append(r.doc.Includes, name)
	sec.AddSection(&doc.Section)
	return nil
}

// skipInsignificant advances past whitespace and comments. Line
// comments run to and including the newline; block comments run to and
// including their end marker, or to the end of input when unterminated.
func (r *run) skipInsignificant() {
	syn := r.parser.syntax
	for {
		r.cursor.SkipWhile(isSpace)
		switch {
		case r.cursor.Matches(syn.LineComment):
			r.cursor.SkipUntil((*scanner.Cursor).AtNewline)
			r.cursor.Advance(1)
		case r.cursor.Matches(syn.BlockCommentBegin):
			r.cursor.Advance(len(syn.BlockCommentBegin))
			r.cursor.SkipUntil(func(c *scanner.Cursor) bool {
				return c.Matches(syn.BlockCommentEnd)
			})
			r.cursor.Advance(len(syn.BlockCommentEnd))
		default:
			return
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
