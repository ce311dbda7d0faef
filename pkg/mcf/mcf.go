package mcf

import (
	"path/filepath"
	"time"

	"mercator-hq/callisto/pkg/mcf/ast"
	"mercator-hq/callisto/pkg/mcf/parser"
	"mercator-hq/callisto/pkg/mcf/source"
	"mercator-hq/callisto/pkg/telemetry/metrics"
)

// ParseString parses MCF text with the default syntax and processors.
// Line terminators are normalized before parsing. sourceName identifies
// the document in errors; include directives fail without a loader.
func ParseString(text, sourceName string) (*ast.Document, error) {
	return parser.NewParser().ParseString(source.Normalize(text), sourceName)
}

// ParseFile parses the MCF file at path. Include directives are
// resolved relative to the file's directory.
func ParseFile(path string) (*ast.Document, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	p := parser.NewParser().WithLoader(source.NewFileSource(dir, nil))
	return p.ParseFile(name)
}

// ParseFileWithMetrics parses the MCF file at path and records the
// outcome on the collector.
func ParseFileWithMetrics(path string, c *metrics.Collector) (*ast.Document, error) {
	start := time.Now()
	doc, err := ParseFile(path)
	elapsed := time.Since(start)

	if c != nil {
		if err != nil {
			c.RecordParse("error", elapsed, 0)
		} else {
			c.RecordParse("success", elapsed, len(doc.Includes))
		}
	}
	return doc, err
}
