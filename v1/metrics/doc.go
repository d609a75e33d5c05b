// Package metrics provides Prometheus-based metrics for the vector store.
//
// Metrics implements observability.Observer. Every component that accepts an
// observer (the vectorstore adapter and the qdrant and pgvector backends)
// reports one OperationContext per call, and Metrics turns it into:
//
//	vectorstore_operations_total{component, operation, namespace, status}
//	vectorstore_operation_duration_seconds{component, operation, namespace}
//	vectorstore_items_total{component, operation, namespace}
//
// All series carry a constant service label taken from Config.ServiceName.
//
// # Direct Usage (Without FX)
//
//	m := metrics.NewMetrics(metrics.DefaultConfig())
//	go m.Server.ListenAndServe()
//
//	store, err := vectorstore.New(ctx, vectorstore.Params{
//		Config:   cfg,
//		Connect:  qdrant.Connector(qcfg),
//		Embedder: embedder,
//		Observer: m,
//	})
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule, // provides *Metrics and observability.Observer
//		fx.Provide(metrics.DefaultConfig),
//	)
//
// # Configuration
//
//	METRICS_ADDRESS=:9090
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true
//	METRICS_SERVICE_NAME=vectorstore
//
// # Custom Metrics
//
// Applications can register additional collectors on the exposed Registry.
//
// # Thread Safety
//
// All methods on the Metrics struct are safe for concurrent use.
package metrics
