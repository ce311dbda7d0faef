// Package metrics provides Prometheus metrics for document parsing and
// reloading.
//
// Metrics:
//   - callisto_mcf_documents_parsed_total: parse count by status
//   - callisto_mcf_parse_errors_total: parse error count by kind
//   - callisto_mcf_includes_resolved_total: include directives resolved
//   - callisto_mcf_parse_duration_seconds: parse duration histogram
//   - callisto_mcf_reloads_total: watcher/scheduler reload count by status
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config controls metric registration.
type Config struct {
	Enabled         bool
	Namespace       string
	Subsystem       string
	DurationBuckets []float64
}

// DefaultConfig returns an enabled configuration with the callisto/mcf
// namespace and duration buckets sized for configuration files (parses
// are expected to finish well under a second).
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		Namespace:       "callisto",
		Subsystem:       "mcf",
		DurationBuckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
	}
}

// Collector records parsing metrics. If the configuration is disabled,
// every record method is a no-op.
type Collector struct {
	config   *Config
	registry *prometheus.Registry

	documentsParsed  *prometheus.CounterVec
	parseErrors      *prometheus.CounterVec
	includesResolved prometheus.Counter
	parseDuration    prometheus.Histogram
	reloads          *prometheus.CounterVec
}

// NewCollector creates and registers the parsing metrics with the
// provided registry. If registry is nil, a fresh registry is used.
func NewCollector(cfg *Config, registry *prometheus.Registry) *Collector {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "callisto"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "mcf"
	}
	if len(cfg.DurationBuckets) == 0 {
		cfg.DurationBuckets = DefaultConfig().DurationBuckets
	}

	c := &Collector{
		config:   cfg,
		registry: registry,

		documentsParsed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "documents_parsed_total",
				Help:      "Total number of documents parsed",
			},
			[]string{"status"},
		),

		parseErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parse_errors_total",
				Help:      "Total number of parse errors by kind",
			},
			[]string{"kind"},
		),

		includesResolved: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "includes_resolved_total",
				Help:      "Total number of include directives resolved",
			},
		),

		parseDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "parse_duration_seconds",
				Help:      "Duration of document parses in seconds",
				Buckets:   cfg.DurationBuckets,
			},
		),

		reloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "reloads_total",
				Help:      "Total number of document reloads by status",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(
		c.documentsParsed,
		c.parseErrors,
		c.includesResolved,
		c.parseDuration,
		c.reloads,
	)

	return c
}

// RecordParse records a completed parse attempt.
func (c *Collector) RecordParse(status string, duration time.Duration, includes int) {
	if !c.config.Enabled {
		return
	}
	c.documentsParsed.WithLabelValues(status).Inc()
	c.parseDuration.Observe(duration.Seconds())
	c.includesResolved.Add(float64(includes))
}

// RecordParseError records a parse failure by error kind.
func (c *Collector) RecordParseError(kind string) {
	if !c.config.Enabled {
		return
	}
	c.parseErrors.WithLabelValues(kind).Inc()
}

// RecordReload records a reload attempt triggered by the watcher or
// scheduler.
func (c *Collector) RecordReload(status string) {
	if !c.config.Enabled {
		return
	}
	c.reloads.WithLabelValues(status).Inc()
}
