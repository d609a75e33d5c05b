package pgvector

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/vectorstore/v1/logger"
	"github.com/Aleph-Alpha/vectorstore/v1/observability"
)

const registryTable = "vectorstore_indexes"

// Postgres owns the pgx connection pool. Adapter builds the vectordb
// contract on top of it.
type Postgres struct {
	pool     *pgxpool.Pool
	cfg      Config
	logger   logger.Logger
	observer observability.Observer

	closeOnce sync.Once
}

// PostgresParams defines dependencies needed to construct the pool.
type PostgresParams struct {
	fx.In

	Config   Config
	Logger   logger.Logger          `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewPostgres opens the pool, pings the server and makes sure the vector
// extension and the index registry table exist.
func NewPostgres(ctx context.Context, p PostgresParams) (*Postgres, error) {
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}

	poolCfg, err := pgxpool.ParseConfig(p.Config.Connection.ConnString())
	if err != nil {
		return nil, fmt.Errorf("pgvector: invalid connection config: %w", err)
	}
	if d := p.Config.ConnectionDetails; d.MaxConns > 0 {
		poolCfg.MaxConns = d.MaxConns
	}
	if d := p.Config.ConnectionDetails; d.MinConns > 0 {
		poolCfg.MinConns = d.MinConns
	}
	if d := p.Config.ConnectionDetails; d.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = d.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pgvector: failed to create pool: %w", err)
	}

	pg := &Postgres{pool: pool, cfg: p.Config, logger: log, observer: p.Observer}

	if err := pool.Ping(ctx); err != nil {
		pg.Close()
		return nil, fmt.Errorf("pgvector: ping failed: %w", err)
	}
	if err := pg.ensureSchema(ctx); err != nil {
		pg.Close()
		return nil, err
	}

	log.Info("pgvector: connected", nil, map[string]interface{}{
		"host":     p.Config.Connection.Host,
		"database": p.Config.Connection.DbName,
	})
	return pg, nil
}

func (p *Postgres) ensureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS vector`); err != nil {
		return fmt.Errorf("pgvector: failed to create extension: %w", err)
	}
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS `+registryTable+` (
			name       TEXT PRIMARY KEY,
			dimension  INTEGER NOT NULL,
			metric     TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("pgvector: failed to create registry table: %w", err)
	}
	return nil
}

// Pool returns the underlying pgx pool.
func (p *Postgres) Pool() *pgxpool.Pool {
	return p.pool
}

// Close closes the pool. It is safe to call more than once.
func (p *Postgres) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.pool.Close()
		p.logger.Info("pgvector: pool closed", nil, nil)
	})
}
