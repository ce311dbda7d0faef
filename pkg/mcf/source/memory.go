package source

import "fmt"

// MemorySource serves documents from an in-memory map. It is used in
// tests and for configuration embedded in a binary.
type MemorySource struct {
	docs map[string]string
}

// NewMemorySource creates a source serving the given documents.
func NewMemorySource(docs map[string]string) *MemorySource {
	if docs == nil {
		docs = map[string]string{}
	}
	return &MemorySource{docs: docs}
}

// Load returns the newline-normalized text of the named document.
func (s *MemorySource) Load(name string) (string, error) {
	text, ok := s.docs[name]
	if !ok {
		return "", fmt.Errorf("document %q not found", name)
	}
	return Normalize(text), nil
}

// Set adds or replaces a document.
func (s *MemorySource) Set(name, text string) {
	s.docs[name] = text
}
