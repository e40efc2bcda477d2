// Package observability groups the API's logging, metrics and tracing.
//
// Subpackages:
//   - logging: slog loggers carried through request contexts
//   - metrics: business counters and database pool collectors for Prometheus
//   - tracing: OpenTelemetry middleware and tracer provider setup
package observability
