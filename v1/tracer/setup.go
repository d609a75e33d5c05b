package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/vectorstore/v1/logger"
)

// instrumentationName names the tracer handed to the vector store.
const instrumentationName = "github.com/Aleph-Alpha/vectorstore"

// Tracer wraps an OpenTelemetry TracerProvider and hands out the
// trace.Tracer used by the vector store and its backends.
//
// The Tracer is safe for concurrent use.
type Tracer struct {
	provider *sdktrace.TracerProvider
	logger   logger.Logger
}

// NewClient creates the tracer provider, installs it as the global provider
// and configures W3C trace context propagation.
//
// If cfg.EnableExport is set an OTLP HTTP exporter is attached through a
// batching span processor.
//
// Example:
//
//	t, err := tracer.NewClient(tracer.Config{ServiceName: "search"}, log)
//	store, err := vectorstore.New(ctx, vectorstore.Params{..., Tracer: t.Tracer()})
func NewClient(cfg Config, log logger.Logger) (*Tracer, error) {
	var options []sdktrace.TracerProviderOption

	if cfg.EnableExport {
		client := otlptracehttp.NewClient()
		exporter, err := otlptrace.New(context.Background(), client)
		if err != nil {
			return nil, fmt.Errorf("cannot initiate trace exporter: %w", err)
		}
		options = append(options, sdktrace.WithBatcher(exporter))
	}

	return newTracer(cfg, log, options...), nil
}

func newTracer(cfg Config, log logger.Logger, options ...sdktrace.TracerProviderOption) *Tracer {
	options = append(options, sdktrace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := sdktrace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	log.Info("tracer initialized", nil, map[string]interface{}{
		"service": cfg.ServiceName,
		"export":  cfg.EnableExport,
	})

	return &Tracer{provider: tp, logger: log}
}

// Tracer returns the named tracer for vector store spans.
func (t *Tracer) Tracer() trace.Tracer {
	return t.provider.Tracer(instrumentationName)
}

// Shutdown flushes pending spans and stops the provider.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
