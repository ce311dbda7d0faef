package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mercator-hq/callisto/pkg/mcf/parser"
)

// Profile is a loadable description of an MCF dialect.
type Profile struct {
	Markers         Markers `yaml:"markers"`
	Trim            Trim    `yaml:"trim"`
	MaxIncludeDepth int     `yaml:"max_include_depth"`
}

// Markers configures the syntax marker strings. Empty fields keep the
// defaults from parser.DefaultSyntax.
type Markers struct {
	KeyValueDelimiter string `yaml:"key_value_delimiter"`
	SectionBegin      string `yaml:"section_begin"`
	LineComment       string `yaml:"line_comment"`
	BlockCommentBegin string `yaml:"block_comment_begin"`
	BlockCommentEnd   string `yaml:"block_comment_end"`
	LongValueBegin    string `yaml:"long_value_begin"`
	LongValueEnd      string `yaml:"long_value_end"`
	IncludeMarker     string `yaml:"include_marker"`
}

// Trim configures whether the post-processors trim surrounding
// whitespace. Nil fields default to true.
type Trim struct {
	Names  *bool `yaml:"names"`
	Values *bool `yaml:"values"`
}

// Load reads a profile from a YAML file, applies defaults, and
// validates it.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %q: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile file %q: %w", path, err)
	}

	ApplyDefaults(&p)

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &p, nil
}

// ApplyDefaults fills unset fields with the standard MCF dialect.
func ApplyDefaults(p *Profile) {
	def := parser.DefaultSyntax()
	m := &p.Markers
	if m.KeyValueDelimiter == "" {
		m.KeyValueDelimiter = def.KeyValueDelimiter
	}
	if m.SectionBegin == "" {
		m.SectionBegin = def.SectionBegin
	}
	if m.LineComment == "" {
		m.LineComment = def.LineComment
	}
	if m.BlockCommentBegin == "" {
		m.BlockCommentBegin = def.BlockCommentBegin
	}
	if m.BlockCommentEnd == "" {
		m.BlockCommentEnd = def.BlockCommentEnd
	}
	if m.LongValueBegin == "" {
		m.LongValueBegin = def.LongValueBegin
	}
	if m.LongValueEnd == "" {
		m.LongValueEnd = def.LongValueEnd
	}
	if m.IncludeMarker == "" {
		m.IncludeMarker = def.IncludeMarker
	}
	if p.MaxIncludeDepth <= 0 {
		p.MaxIncludeDepth = 32
	}
}

// Validate checks the profile for usable marker configuration.
func (p *Profile) Validate() error {
	return p.Syntax().Validate()
}

// Syntax converts the profile's markers to a parser.Syntax.
func (p *Profile) Syntax() parser.Syntax {
	m := p.Markers
	return parser.Syntax{
		KeyValueDelimiter: m.KeyValueDelimiter,
		SectionBegin:      m.SectionBegin,
		LineComment:       m.LineComment,
		BlockCommentBegin: m.BlockCommentBegin,
		BlockCommentEnd:   m.BlockCommentEnd,
		LongValueBegin:    m.LongValueBegin,
		LongValueEnd:      m.LongValueEnd,
		IncludeMarker:     m.IncludeMarker,
	}
}

// Processors converts the profile's trim settings to post-processors.
func (p *Profile) Processors() parser.Processors {
	procs := parser.DefaultProcessors()
	if p.Trim.Names != nil && !*p.Trim.Names {
		procs.SectionName = parser.Identity
		procs.OptionName = parser.Identity
	}
	if p.Trim.Values != nil && !*p.Trim.Values {
		procs.OptionValue = parser.Identity
		procs.IncludeFile = parser.Identity
	}
	return procs
}

// NewParser builds a parser configured from the profile.
func (p *Profile) NewParser() *parser.Parser {
	return parser.NewParser().
		WithSyntax(p.Syntax()).
		WithProcessors(p.Processors()).
		WithMaxIncludeDepth(p.MaxIncludeDepth)
}
