package pgvector

import (
	"time"

	"github.com/Aleph-Alpha/vectorstore/v1/observability"
)

// observeOperation notifies the observer about an operation if one is configured.
func (p *Postgres) observeOperation(operation, resource, subResource string, start time.Time, err error, size int64) {
	if p == nil || p.observer == nil {
		return
	}

	p.observer.ObserveOperation(observability.OperationContext{
		Component:   "pgvector",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    time.Since(start),
		Error:       err,
		Size:        size,
	})
}
