// Package telemetry groups the observability support for the MCF
// toolkit. The metrics subpackage provides Prometheus collectors for
// parse and reload activity; structured logging uses log/slog directly
// in the packages that emit it.
package telemetry
