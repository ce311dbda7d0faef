package manager

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"mercator-hq/callisto/pkg/mcf/ast"
	mcfErrors "mercator-hq/callisto/pkg/mcf/errors"
	"mercator-hq/callisto/pkg/mcf/parser"
	"mercator-hq/callisto/pkg/telemetry/metrics"
)

// Manager owns the current parsed tree of one document and re-parses
// it on demand. A failed reload keeps the previous tree, so consumers
// never observe a half-applied configuration.
type Manager struct {
	parser  *parser.Parser
	name    string
	logger  *slog.Logger
	metrics *metrics.Collector

	mu       sync.RWMutex
	current  *ast.Document
	onUpdate func(*ast.Document)
}

// New creates a manager for the named document. The parser must have a
// loader configured; name is resolved through it.
func New(p *parser.Parser, name string) *Manager {
	return &Manager{
		parser: p,
		name:   name,
		logger: slog.Default().With("component", "mcf.manager"),
	}
}

// WithLogger sets the logger.
func (m *Manager) WithLogger(logger *slog.Logger) *Manager {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// WithMetrics sets the metrics collector.
func (m *Manager) WithMetrics(c *metrics.Collector) *Manager {
	m.metrics = c
	return m
}

// WithOnUpdate registers a callback invoked with the new tree after
// every successful load. The callback runs on the loading goroutine.
func (m *Manager) WithOnUpdate(fn func(*ast.Document)) *Manager {
	m.onUpdate = fn
	return m
}

// Load parses the document and, on success, replaces the current tree.
func (m *Manager) Load() error {
	start := time.Now()
	doc, err := m.parser.ParseFile(m.name)
	elapsed := time.Since(start)

	if err != nil {
		if m.metrics != nil {
			m.metrics.RecordParse("error", elapsed, 0)
			var pe *mcfErrors.Error
			if errors.As(err, &pe) {
				m.metrics.RecordParseError(string(pe.Kind))
			}
		}
		m.logger.Error("failed to parse document",
			"name", m.name,
			"error", err,
		)
		return err
	}

	if m.metrics != nil {
		m.metrics.RecordParse("success", elapsed, len(doc.Includes))
	}

	m.mu.Lock()
	m.current = doc
	m.mu.Unlock()

	m.logger.Info("document loaded",
		"name", m.name,
		"option_count", doc.OptionCount(),
		"section_count", doc.SectionCount(),
		"include_count", len(doc.Includes),
		"duration_ms", elapsed.Milliseconds(),
	)

	if m.onUpdate != nil {
		m.onUpdate(doc)
	}
	return nil
}

// Reload re-parses the document, recording the reload outcome. It is
// the callback shape expected by FileWatcher.Watch and Scheduler.
func (m *Manager) Reload() error {
	err := m.Load()
	if m.metrics != nil {
		if err != nil {
			m.metrics.RecordReload("error")
		} else {
			m.metrics.RecordReload("success")
		}
	}
	return err
}

// Current returns the most recently loaded tree, or nil before the
// first successful Load.
func (m *Manager) Current() *ast.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}
