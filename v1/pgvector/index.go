package pgvector

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// tableIndex is a vectordb.Index over one index table. Scores are the
// pgvector distance operator results, so lower is better.
type tableIndex struct {
	pg        *Postgres
	name      string
	table     string
	dimension int
	operator  string
}

var (
	_ vectordb.Index         = (*tableIndex)(nil)
	_ vectordb.ScoreReporter = (*tableIndex)(nil)
)

// ScoreKind reports distance scores.
func (x *tableIndex) ScoreKind() vectordb.ScoreKind {
	return vectordb.ScoreDistance
}

func (x *tableIndex) checkDimension(v []float32) error {
	if len(v) != x.dimension {
		return fmt.Errorf("%w: index %s expects %d, got %d", vectordb.ErrDimensionMismatch, x.name, x.dimension, len(v))
	}
	return nil
}

// Upsert writes all records in a single batch inside one transaction.
func (x *tableIndex) Upsert(ctx context.Context, ns vectordb.Namespace, records []vectordb.Record) (err error) {
	start := time.Now()
	defer func() { x.pg.observeOperation("upsert", x.name, string(ns), start, err, int64(len(records))) }()

	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := upsertSQL(x.table)
	for _, r := range records {
		if err := x.checkDimension(r.Values); err != nil {
			return fmt.Errorf("record %s: %w", r.ID, err)
		}
		batch.Queue(query, string(ns), r.ID, pgvector.NewVector(r.Values), metadataOrEmpty(r.Metadata))
	}

	err = pgx.BeginFunc(ctx, x.pg.pool, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return fmt.Errorf("pgvector: upsert failed: %w", err)
	}
	return nil
}

// Update replaces the embedding and metadata of one existing row.
func (x *tableIndex) Update(ctx context.Context, ns vectordb.Namespace, id string, values []float32, metadata map[string]any) (err error) {
	start := time.Now()
	defer func() { x.pg.observeOperation("update", x.name, string(ns), start, err, 1) }()

	if err := x.checkDimension(values); err != nil {
		return err
	}

	tag, err := x.pg.pool.Exec(ctx, updateSQL(x.table), string(ns), id, pgvector.NewVector(values), metadataOrEmpty(metadata))
	if err != nil {
		return fmt.Errorf("pgvector: update failed for %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s/%s", vectordb.ErrRecordNotFound, ns, id)
	}
	return nil
}

// Delete removes ids from ns. Unknown ids are ignored.
func (x *tableIndex) Delete(ctx context.Context, ns vectordb.Namespace, ids []string) (err error) {
	start := time.Now()
	defer func() { x.pg.observeOperation("delete", x.name, string(ns), start, err, int64(len(ids))) }()

	if len(ids) == 0 {
		return nil
	}
	if _, err := x.pg.pool.Exec(ctx, deleteSQL(x.table), string(ns), ids); err != nil {
		return fmt.Errorf("pgvector: delete failed: %w", err)
	}
	return nil
}

// DeleteAll removes every row of ns.
func (x *tableIndex) DeleteAll(ctx context.Context, ns vectordb.Namespace) (err error) {
	start := time.Now()
	defer func() { x.pg.observeOperation("delete_all", x.name, string(ns), start, err, 0) }()

	if _, err := x.pg.pool.Exec(ctx, deleteAllSQL(x.table), string(ns)); err != nil {
		return fmt.Errorf("pgvector: delete all failed: %w", err)
	}
	return nil
}

// Query orders the namespace's rows by distance to the query vector.
func (x *tableIndex) Query(ctx context.Context, req vectordb.QueryRequest) (resp *vectordb.QueryResponse, err error) {
	start := time.Now()
	defer func() {
		var n int64
		if resp != nil {
			n = int64(len(resp.Matches))
		}
		x.pg.observeOperation("query", x.name, string(req.Namespace), start, err, n)
	}()

	if err := x.checkDimension(req.Vector); err != nil {
		return nil, err
	}
	resp = &vectordb.QueryResponse{Namespace: req.Namespace, Matches: []vectordb.Match{}}
	if req.TopK <= 0 {
		return resp, nil
	}

	rows, err := x.pg.pool.Query(ctx, querySQL(x.table, x.operator),
		string(req.Namespace), pgvector.NewVector(req.Vector), req.TopK)
	if err != nil {
		return nil, fmt.Errorf("pgvector: query failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       string
			vec      pgvector.Vector
			metadata map[string]any
			score    float64
		)
		if err := rows.Scan(&id, &vec, &metadata, &score); err != nil {
			return nil, fmt.Errorf("pgvector: scan failed: %w", err)
		}
		m := vectordb.Match{ID: id, Score: float32(score)}
		if req.IncludeMetadata {
			m.Metadata = metadataOrEmpty(metadata)
		}
		if req.IncludeValues {
			m.Values = vec.Slice()
		}
		resp.Matches = append(resp.Matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgvector: query failed: %w", err)
	}
	return resp, nil
}

// Fetch returns the rows of ns with the given ids.
func (x *tableIndex) Fetch(ctx context.Context, ns vectordb.Namespace, ids []string) (resp *vectordb.FetchResponse, err error) {
	start := time.Now()
	defer func() {
		var n int64
		if resp != nil {
			n = int64(len(resp.Records))
		}
		x.pg.observeOperation("fetch", x.name, string(ns), start, err, n)
	}()

	resp = &vectordb.FetchResponse{Namespace: ns, Records: make(map[string]vectordb.Record, len(ids))}
	if len(ids) == 0 {
		return resp, nil
	}

	rows, err := x.pg.pool.Query(ctx, fetchSQL(x.table), string(ns), ids)
	if err != nil {
		return nil, fmt.Errorf("pgvector: fetch failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       string
			vec      pgvector.Vector
			metadata map[string]any
		)
		if err := rows.Scan(&id, &vec, &metadata); err != nil {
			return nil, fmt.Errorf("pgvector: scan failed: %w", err)
		}
		resp.Records[id] = vectordb.Record{ID: id, Values: vec.Slice(), Metadata: metadataOrEmpty(metadata)}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgvector: fetch failed: %w", err)
	}
	return resp, nil
}

func metadataOrEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
