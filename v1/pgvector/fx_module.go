package pgvector

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// FXModule defines the Fx module for the pgvector backend. It provides the
// pool, the Adapter and a vectordb.Connector, and closes the pool on stop.
//
// Dependencies required by this module:
// - A pgvector.Config instance
// - Optionally a logger.Logger and an observability.Observer
var FXModule = fx.Module("pgvector",
	fx.Provide(
		func(p PostgresParams) (*Postgres, error) {
			return NewPostgres(context.Background(), p)
		},
		NewAdapter,
		func(a *Adapter) vectordb.Connector { return vectordb.StaticConnector(a) },
	),
	fx.Invoke(RegisterPostgresLifecycle),
)

// RegisterPostgresLifecycle closes the pool when the application stops.
func RegisterPostgresLifecycle(lc fx.Lifecycle, pg *Postgres) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			pg.Close()
			return nil
		},
	})
}
