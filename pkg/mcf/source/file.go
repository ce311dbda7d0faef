package source

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FileSource loads documents from files under a root directory. Source
// names are resolved relative to the root, so include directives cannot
// escape it with absolute paths.
type FileSource struct {
	root   string
	logger *slog.Logger
}

// NewFileSource creates a file-based source rooted at dir.
func NewFileSource(dir string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{
		root:   dir,
		logger: logger,
	}
}

// Load reads the named document and returns its newline-normalized text.
func (s *FileSource) Load(name string) (string, error) {
	path := filepath.Join(s.root, filepath.Clean("/"+name))

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", path, err)
	}

	s.logger.Debug("loaded document",
		"name", name,
		"path", path,
		"bytes", len(data),
	)

	return Normalize(string(data)), nil
}
