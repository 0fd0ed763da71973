// Package tracing integrates OpenTelemetry with the docflow engine: every run
// and every pipeline stage is recorded as a span.  All instrumentation is
// kept in a separate package so that the rest of the engine only deals with
// the small Span wrapper defined here.
package tracing
