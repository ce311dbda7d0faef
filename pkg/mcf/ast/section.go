package ast

// Section is a node of the document tree. It holds its options and its
// child sections in two separate insertion-ordered lists; the combined
// source order between an option and a child section at the same level
// is not recoverable from the tree.
type Section struct {
	Name     string
	Options  []*Option
	Sections []*Section
	Owner    *Owner
}

// NewSection creates an empty section with the given name and owner.
func NewSection(name string, owner *Owner) *Section {
	return &Section{
		Name:  name,
		Owner: owner,
	}
}

// AddOption appends an option to the section, preserving insertion order.
func (s *Section) AddOption(opt *Option) {
	s.Options = append(s.Options, opt)
}

// AddSection appends a child section, preserving insertion order.
func (s *Section) AddSection(child *Section) {
	s.Sections = append(s.Sections, child)
}

// Option returns the first option with the given name, or nil if the
// section has no such option.
func (s *Section) Option(name string) *Option {
	for _, opt := range s.Options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// HasOption returns true if the section has an option with the given name.
func (s *Section) HasOption(name string) bool {
	return s.Option(name) != nil
}

// Value returns the value of the named option, or fallback if the
// section has no such option.
func (s *Section) Value(name, fallback string) string {
	if opt := s.Option(name); opt != nil {
		return opt.Value
	}
	return fallback
}

// Section returns the first child section with the given name, or nil
// if there is none.
func (s *Section) Section(name string) *Section {
	for _, child := range s.Sections {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// OptionCount returns the number of options directly in this section.
func (s *Section) OptionCount() int {
	return len(s.Options)
}

// SectionCount returns the number of direct child sections.
func (s *Section) SectionCount() int {
	return len(s.Sections)
}

// IsEmpty returns true if the section has no options and no child sections.
func (s *Section) IsEmpty() bool {
	return len(s.Options) == 0 && len(s.Sections) == 0
}

// Walk visits the section and every descendant section depth-first in
// insertion order. Traversal stops early if fn returns false.
func (s *Section) Walk(fn func(*Section) bool) bool {
	if !fn(s) {
		return false
	}
	for _, child := range s.Sections {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}
