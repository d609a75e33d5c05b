package vectordb

import "context"

// IndexClient is the control-plane side of a vector database: it lists,
// creates and binds indexes. One IndexClient typically owns one network
// connection or pool.
//
// Implementations: qdrant.Adapter, pgvector.Adapter, memory.Client.
//
//go:generate mockgen -source=interface.go -destination=mock_interface.go -package=vectordb
type IndexClient interface {
	// ListIndexNames returns the names of all indexes visible to the client.
	ListIndexNames(ctx context.Context) ([]string, error)

	// CreateIndex creates an index with the given dimensionality, metric and
	// placement. Creating an index that already exists is an error.
	CreateIndex(ctx context.Context, spec IndexSpec) error

	// BindIndex returns a handle to an existing index.
	BindIndex(ctx context.Context, name string) (Index, error)

	// Close releases the client's resources. Close is idempotent.
	Close() error
}

// Index is a bound handle to one index. Every data-plane operation is scoped
// to a Namespace; records in different namespaces never see each other even
// when they share an ID.
type Index interface {
	// Upsert writes all records in one batch, replacing records with the same ID.
	Upsert(ctx context.Context, ns Namespace, records []Record) error

	// Update replaces the vector and metadata of one existing record.
	Update(ctx context.Context, ns Namespace, id string, values []float32, metadata map[string]any) error

	// Delete removes the given IDs. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, ns Namespace, ids []string) error

	// DeleteAll removes every record of the namespace.
	DeleteAll(ctx context.Context, ns Namespace) error

	// Query returns up to TopK matches ordered best-first.
	Query(ctx context.Context, req QueryRequest) (*QueryResponse, error)

	// Fetch returns the records with the given IDs. Unknown IDs are omitted.
	Fetch(ctx context.Context, ns Namespace, ids []string) (*FetchResponse, error)
}

// ScoreReporter is implemented by indexes that know whether their Match
// scores are distances (lower is better) or similarities (higher is better).
type ScoreReporter interface {
	ScoreKind() ScoreKind
}

// Connector opens an IndexClient. It carries whatever credentials the
// backend needs and is called once per store construction.
type Connector func(ctx context.Context) (IndexClient, error)

// StaticConnector returns a Connector that hands out an already constructed
// client.
func StaticConnector(client IndexClient) Connector {
	return func(context.Context) (IndexClient, error) {
		return client, nil
	}
}
