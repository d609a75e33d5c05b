package pgvector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// uniqueViolation is the SQLSTATE Postgres reports for duplicate keys.
const uniqueViolation = "23505"

// Adapter implements vectordb.IndexClient on Postgres with pgvector. Each
// index is a table keyed by (namespace, id) and recorded in a registry table.
type Adapter struct {
	pg *Postgres
}

var _ vectordb.IndexClient = (*Adapter)(nil)

// NewAdapter wraps an open Postgres pool.
func NewAdapter(pg *Postgres) *Adapter {
	return &Adapter{pg: pg}
}

// Connector returns a vectordb.Connector that opens a new pool on every call.
func Connector(p PostgresParams) vectordb.Connector {
	return func(ctx context.Context) (vectordb.IndexClient, error) {
		pg, err := NewPostgres(ctx, p)
		if err != nil {
			return nil, err
		}
		return NewAdapter(pg), nil
	}
}

// ListIndexNames lists the registered indexes.
func (a *Adapter) ListIndexNames(ctx context.Context) (names []string, err error) {
	start := time.Now()
	defer func() { a.pg.observeOperation("list_indexes", "", "", start, err, int64(len(names))) }()

	rows, err := a.pg.pool.Query(ctx, `SELECT name FROM `+registryTable+` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("pgvector: failed to list indexes: %w", err)
	}
	names, err = pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("pgvector: failed to list indexes: %w", err)
	}
	return names, nil
}

// CreateIndex registers the index and creates its table in one transaction.
// Placement is ignored.
func (a *Adapter) CreateIndex(ctx context.Context, spec vectordb.IndexSpec) (err error) {
	start := time.Now()
	defer func() { a.pg.observeOperation("create_index", spec.Name, "", start, err, 0) }()

	if err := spec.Validate(); err != nil {
		return err
	}

	prefix := a.pg.cfg.TablePrefix
	err = pgx.BeginFunc(ctx, a.pg.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO `+registryTable+` (name, dimension, metric) VALUES ($1, $2, $3)`,
			spec.Name, spec.Dimension, string(spec.Metric))
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return fmt.Errorf("%w: %s", vectordb.ErrIndexExists, spec.Name)
			}
			return err
		}

		if _, err := tx.Exec(ctx, createTableSQL(tableIdent(prefix, spec.Name), spec.Dimension)); err != nil {
			return err
		}
		if a.pg.cfg.CreateANNIndex {
			if _, err := tx.Exec(ctx, createANNIndexSQL(prefix, spec.Name, spec.Metric)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("pgvector: failed to create index '%s': %w", spec.Name, err)
	}

	a.pg.logger.Info("pgvector: created index", nil, map[string]interface{}{
		"index":     spec.Name,
		"dimension": spec.Dimension,
		"metric":    string(spec.Metric),
	})
	return nil
}

// BindIndex loads the registry entry for name.
func (a *Adapter) BindIndex(ctx context.Context, name string) (idx vectordb.Index, err error) {
	start := time.Now()
	defer func() { a.pg.observeOperation("bind_index", name, "", start, err, 0) }()

	var (
		dimension int
		metric    string
	)
	err = a.pg.pool.QueryRow(ctx,
		`SELECT dimension, metric FROM `+registryTable+` WHERE name = $1`, name,
	).Scan(&dimension, &metric)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", vectordb.ErrIndexNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("pgvector: failed to bind index '%s': %w", name, err)
	}

	operator, err := distanceOperator(vectordb.Metric(metric))
	if err != nil {
		return nil, err
	}

	return &tableIndex{
		pg:        a.pg,
		name:      name,
		table:     tableIdent(a.pg.cfg.TablePrefix, name),
		dimension: dimension,
		operator:  operator,
	}, nil
}

// Close closes the pool.
func (a *Adapter) Close() error {
	a.pg.Close()
	return nil
}
