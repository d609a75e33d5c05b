package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// Index is a brute-force vectordb.Index. Query scores every record of the
// namespace and returns distances, lower is better.
type Index struct {
	spec vectordb.IndexSpec

	mu         sync.RWMutex
	namespaces map[vectordb.Namespace]map[string]vectordb.Record
}

var (
	_ vectordb.Index         = (*Index)(nil)
	_ vectordb.ScoreReporter = (*Index)(nil)
)

func newIndex(spec vectordb.IndexSpec) *Index {
	return &Index{
		spec:       spec,
		namespaces: make(map[vectordb.Namespace]map[string]vectordb.Record),
	}
}

// NewIndex returns a standalone index that is not registered with any
// Client, for binding a store by handle.
func NewIndex(spec vectordb.IndexSpec) (*Index, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return newIndex(spec), nil
}

// ScoreKind reports distance scores.
func (x *Index) ScoreKind() vectordb.ScoreKind {
	return vectordb.ScoreDistance
}

// Upsert stores copies of records, replacing existing IDs.
func (x *Index) Upsert(_ context.Context, ns vectordb.Namespace, records []vectordb.Record) error {
	for _, r := range records {
		if err := x.checkDimension(r.Values); err != nil {
			return fmt.Errorf("record %s: %w", r.ID, err)
		}
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	bucket := x.bucket(ns)
	for _, r := range records {
		bucket[r.ID] = cloneRecord(r)
	}
	return nil
}

// Update replaces the vector and metadata of an existing record.
func (x *Index) Update(_ context.Context, ns vectordb.Namespace, id string, values []float32, metadata map[string]any) error {
	if err := x.checkDimension(values); err != nil {
		return err
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	bucket := x.namespaces[ns]
	if _, ok := bucket[id]; !ok {
		return fmt.Errorf("%w: %s/%s", vectordb.ErrRecordNotFound, ns, id)
	}
	bucket[id] = cloneRecord(vectordb.Record{ID: id, Values: values, Metadata: metadata})
	return nil
}

// Delete removes ids from ns. Unknown ids are ignored.
func (x *Index) Delete(_ context.Context, ns vectordb.Namespace, ids []string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	bucket := x.namespaces[ns]
	for _, id := range ids {
		delete(bucket, id)
	}
	return nil
}

// DeleteAll drops the namespace.
func (x *Index) DeleteAll(_ context.Context, ns vectordb.Namespace) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	delete(x.namespaces, ns)
	return nil
}

// Query scores every record in the namespace and returns the TopK closest,
// ties broken by ID.
func (x *Index) Query(_ context.Context, req vectordb.QueryRequest) (*vectordb.QueryResponse, error) {
	if err := x.checkDimension(req.Vector); err != nil {
		return nil, err
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	bucket := x.namespaces[req.Namespace]
	matches := make([]vectordb.Match, 0, len(bucket))
	for id, r := range bucket {
		d, err := distance(x.spec.Metric, req.Vector, r.Values)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", id, err)
		}
		m := vectordb.Match{ID: id, Score: d}
		if req.IncludeValues {
			m.Values = slices.Clone(r.Values)
		}
		if req.IncludeMetadata {
			m.Metadata = maps.Clone(r.Metadata)
		}
		matches = append(matches, m)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score < matches[j].Score
		}
		return matches[i].ID < matches[j].ID
	})
	if req.TopK >= 0 && len(matches) > req.TopK {
		matches = matches[:req.TopK]
	}

	return &vectordb.QueryResponse{Namespace: req.Namespace, Matches: matches}, nil
}

// Fetch returns copies of the records found in ns.
func (x *Index) Fetch(_ context.Context, ns vectordb.Namespace, ids []string) (*vectordb.FetchResponse, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	bucket := x.namespaces[ns]
	out := &vectordb.FetchResponse{Namespace: ns, Records: make(map[string]vectordb.Record, len(ids))}
	for _, id := range ids {
		if r, ok := bucket[id]; ok {
			out.Records[id] = cloneRecord(r)
		}
	}
	return out, nil
}

// Len returns the number of records in ns.
func (x *Index) Len(ns vectordb.Namespace) int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.namespaces[ns])
}

func (x *Index) bucket(ns vectordb.Namespace) map[string]vectordb.Record {
	b, ok := x.namespaces[ns]
	if !ok {
		b = make(map[string]vectordb.Record)
		x.namespaces[ns] = b
	}
	return b
}

func (x *Index) checkDimension(v []float32) error {
	if len(v) != x.spec.Dimension {
		return fmt.Errorf("%w: index %s expects %d, got %d", vectordb.ErrDimensionMismatch, x.spec.Name, x.spec.Dimension, len(v))
	}
	return nil
}

func cloneRecord(r vectordb.Record) vectordb.Record {
	return vectordb.Record{
		ID:       r.ID,
		Values:   slices.Clone(r.Values),
		Metadata: maps.Clone(r.Metadata),
	}
}
