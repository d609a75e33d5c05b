package qdrant

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// FXModule defines the Fx module for the Qdrant backend.
//
// The module:
//  1. Provides NewQdrantClient and NewAdapter.
//  2. Exposes the adapter as a vectordb.Connector for vectorstore.FXModule.
//  3. Invokes RegisterQdrantLifecycle to close the connection on shutdown.
//
// Dependencies required by this module:
// - A *qdrant.Config instance
// - Optionally a logger.Logger and an observability.Observer
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewQdrantClient,
		NewAdapter,
		func(a *Adapter) vectordb.Connector { return vectordb.StaticConnector(a) },
	),
	fx.Invoke(RegisterQdrantLifecycle),
)

// RegisterQdrantLifecycle closes the client when the application stops.
// Close is idempotent, so a store that already closed it is harmless.
func RegisterQdrantLifecycle(lc fx.Lifecycle, client *QdrantClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
