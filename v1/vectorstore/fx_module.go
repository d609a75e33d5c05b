package vectorstore

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides a *Store and the VectorStore interface.
//
// Dependencies required by this module:
//   - *vectorstore.Config
//   - embedding.Embedder (for example from embedding.FXModule)
//   - vectordb.Connector (qdrant.FXModule, pgvector.FXModule or a supplied
//     memory connector), unless an IndexRef built with ByHandle is supplied
//
// Logger, Observer and trace.Tracer are picked up when present.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    embedding.FXModule,
//	    qdrant.FXModule,
//	    fx.Supply(vectorstore.DefaultConfig().WithDimension(768)),
//	    vectorstore.FXModule,
//	)
var FXModule = fx.Module("vectorstore",
	fx.Provide(
		NewStore,
		func(s *Store) VectorStore { return s },
	),
	fx.Invoke(RegisterStoreLifecycle),
)

// NewStore is the Fx constructor. It builds the store with a background
// context because Fx providers carry none.
func NewStore(p Params) (*Store, error) {
	return New(context.Background(), p)
}

// RegisterStoreLifecycle closes the store when the application stops.
func RegisterStoreLifecycle(lc fx.Lifecycle, s *Store) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return s.Close()
		},
	})
}
