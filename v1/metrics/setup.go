package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Aleph-Alpha/vectorstore/v1/observability"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing application metrics.
//
// Metrics implements observability.Observer, so it can be handed to any
// package that accepts an observer (vectorstore, qdrant, pgvector).
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service maintains its own isolated registry to prevent metric name collisions.
	Registry *prometheus.Registry

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	itemsTotal        *prometheus.CounterVec
}

var _ observability.Observer = (*Metrics)(nil)

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, wraps all metrics with a constant
// `service` label, registers the operation metrics and creates an HTTP server
// exposing the /metrics endpoint.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.DefaultConfig())
//	store, _ := vectorstore.New(ctx, vectorstore.Params{..., Observer: m})
//
// Access metrics at: http://localhost:9090/metrics
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service carry service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.operationsTotal = createCounterVec(
		"vectorstore_operations_total",
		"Total number of vector store operations by outcome",
		[]string{"component", "operation", "namespace", "status"},
	)
	m.operationDuration = createHistogramVec(
		"vectorstore_operation_duration_seconds",
		"Duration of vector store operations in seconds",
		[]string{"component", "operation", "namespace"},
		prometheus.DefBuckets,
	)
	m.itemsTotal = createCounterVec(
		"vectorstore_items_total",
		"Number of records written or matches returned",
		[]string{"component", "operation", "namespace"},
	)

	wrappedRegistry.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.itemsTotal,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	return m
}
