// Package tracing wires OpenTelemetry into the HTTP stack.
//
// Init installs the SDK tracer provider at startup; Middleware opens one
// server span per request and exposes its trace ID in the X-Trace-Id header,
// which the request logger also records as trace_id.
package tracing
