// Package tracer configures OpenTelemetry tracing for the vector store.
//
// NewClient builds an SDK TracerProvider, optionally exporting over OTLP HTTP,
// and installs it globally together with the W3C trace context propagator.
// Tracer() returns the trace.Tracer that vectorstore.Params and the backends
// accept; spans started through it carry the trace ids the logger attaches
// to context-aware log lines.
//
// The package-level helpers RecordErrorOnSpan and SetAttributes are shared by
// every instrumented component.
package tracer
