package parser

import "strings"

// Processors bundles the four pluggable text transforms applied to raw
// extracted text: section names, option names, option values, and
// include filenames. A nil member falls back to the default, which
// trims surrounding whitespace.
type Processors struct {
	SectionName func(string) string
	OptionName  func(string) string
	OptionValue func(string) string
	IncludeFile func(string) string
}

// DefaultProcessors returns processors that trim leading and trailing
// whitespace from every extracted name and value.
func DefaultProcessors() Processors {
	return Processors{
		SectionName: strings.TrimSpace,
		OptionName:  strings.TrimSpace,
		OptionValue: strings.TrimSpace,
		IncludeFile: strings.TrimSpace,
	}
}

// Identity returns a transform that passes text through unchanged.
// Useful for callers that need raw extracted text.
func Identity(text string) string {
	return text
}

// withDefaults fills nil members with the trimming defaults.
func (p Processors) withDefaults() Processors {
	def := DefaultProcessors()
	if p.SectionName == nil {
		p.SectionName = def.SectionName
	}
	if p.OptionName == nil {
		p.OptionName = def.OptionName
	}
	if p.OptionValue == nil {
		p.OptionValue = def.OptionValue
	}
	if p.IncludeFile == nil {
		p.IncludeFile = def.IncludeFile
	}
	return p
}
