package vectorstore

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/vectorstore/v1/observability"
	"github.com/Aleph-Alpha/vectorstore/v1/tracer"
	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// operation tracks one public call: its span, its observer report and its
// debug log line. A nil store yields an operation that does nothing on finish.
type operation struct {
	store *Store
	name  string
	ns    vectordb.Namespace
	start time.Time
	span  trace.Span
}

func (s *Store) startOperation(ctx context.Context, name string, ns vectordb.Namespace) (context.Context, *operation) {
	if s == nil {
		return ctx, &operation{name: name, ns: ns}
	}
	ctx, span := s.tracer.Start(ctx, "vectorstore."+name)
	tracer.SetAttributes(span, map[string]interface{}{
		"vectorstore.index":     s.indexName,
		"vectorstore.namespace": string(ns),
	})
	return ctx, &operation{store: s, name: name, ns: ns, start: time.Now(), span: span}
}

// finish ends the span, notifies the observer and logs the outcome. size is
// the number of records written or matches returned; failed operations
// report 0.
func (op *operation) finish(ctx context.Context, err error, size int) {
	s := op.store
	if s == nil {
		return
	}
	if err != nil {
		size = 0
	}

	tracer.SetAttributes(op.span, map[string]interface{}{"vectorstore.items": size})
	tracer.RecordErrorOnSpan(op.span, err)
	op.span.End()

	duration := time.Since(op.start)
	if s.observer != nil {
		s.observer.ObserveOperation(observability.OperationContext{
			Component:   "vectorstore",
			Operation:   op.name,
			Resource:    s.indexName,
			SubResource: string(op.ns),
			Duration:    duration,
			Error:       err,
			Size:        int64(size),
		})
	}

	fields := map[string]interface{}{
		"operation":   op.name,
		"namespace":   string(op.ns),
		"items":       size,
		"duration_ms": duration.Milliseconds(),
	}
	if err != nil {
		s.logger.WarnWithContext(ctx, "Vector store operation failed", err, fields)
		return
	}
	s.logger.DebugWithContext(ctx, "Vector store operation completed", nil, fields)
}
