// Package observability defines the hook that std packages use to report the
// outcome of every remote operation they perform.
//
// Packages never depend on a concrete metrics or tracing backend. Instead they
// accept an optional Observer and call it once per operation. The metrics
// package ships a Prometheus-backed implementation.
package observability

import "time"

// OperationContext describes a single completed operation.
type OperationContext struct {
	// Component is the reporting package, e.g. "vectorstore" or "qdrant".
	Component string

	// Operation is the logical operation name, e.g. "add_docs" or "query".
	Operation string

	// Resource is the primary target, e.g. an index or collection name.
	Resource string

	// SubResource narrows the target, e.g. a namespace.
	SubResource string

	// Duration is the wall-clock time the operation took.
	Duration time.Duration

	// Error is the error returned to the caller, nil on success.
	Error error

	// Size is the number of items processed (records written, matches returned).
	Size int64

	// Metadata carries any additional, component specific attributes.
	Metadata map[string]interface{}
}

// Observer receives OperationContext values. Implementations must be safe for
// concurrent use and must not block.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}
