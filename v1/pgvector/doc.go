// Package pgvector implements the vectordb contract on PostgreSQL with the
// pgvector extension, using a pgx connection pool.
//
// Indexes are recorded in the vectorstore_indexes registry table together
// with their dimension and metric. Each index gets its own table:
//
//	CREATE TABLE vs_<index> (
//		namespace TEXT NOT NULL,
//		id        TEXT NOT NULL,
//		embedding vector(<dimension>) NOT NULL,
//		metadata  JSONB NOT NULL DEFAULT '{}',
//		PRIMARY KEY (namespace, id)
//	)
//
// and optionally an HNSW index with the operator class matching the metric.
//
// Scores are pgvector distances: <=> (cosine distance), <-> (L2) or <#>
// (negative inner product). All are lower-is-better, so the bound index
// reports vectordb.ScoreDistance.
//
// Metadata is stored as JSONB, so numbers come back as float64 and string
// lists as []any.
//
//	store, err := vectorstore.New(ctx, vectorstore.Params{
//		Config:   vectorstore.DefaultConfig(),
//		Connect:  pgvector.Connector(pgvector.PostgresParams{Config: pgvector.DefaultConfig()}),
//		Embedder: embedder,
//	})
package pgvector
