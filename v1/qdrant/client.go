package qdrant

import (
	"context"
	"fmt"
	"sync"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/vectorstore/v1/logger"
	"github.com/Aleph-Alpha/vectorstore/v1/observability"
)

// QdrantClient wraps the official Qdrant Go client and owns its gRPC
// connection. Adapter builds the vectordb contract on top of it.
type QdrantClient struct {
	api      *qdrant.Client
	cfg      *Config
	logger   logger.Logger
	observer observability.Observer

	closeOnce sync.Once
	closeErr  error
}

const defaultPort = 6334

// QdrantParams defines dependencies needed to construct the Qdrant client.
// Logger and Observer are optional.
type QdrantParams struct {
	fx.In

	Config   *Config
	Logger   logger.Logger          `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewQdrantClient constructs a QdrantClient and validates connectivity via a
// health check, so an unreachable server fails here and not on first use.
//
// Example:
//
//	client, err := qdrant.NewQdrantClient(qdrant.QdrantParams{Config: cfg})
func NewQdrantClient(p QdrantParams) (*QdrantClient, error) {
	if p.Config == nil {
		return nil, fmt.Errorf("[Qdrant] config is required")
	}
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}

	port := p.Config.Port
	if port == 0 {
		port = defaultPort
	}

	log.Info("[Qdrant] connecting", nil, map[string]interface{}{
		"endpoint": p.Config.Endpoint,
		"port":     port,
	})

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:                   p.Config.Endpoint,
		Port:                   port,
		APIKey:                 p.Config.ApiKey,
		UseTLS:                 p.Config.UseTLS,
		SkipCompatibilityCheck: !p.Config.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to initialize client: %w", err)
	}

	qc := &QdrantClient{
		api:      client,
		cfg:      p.Config,
		logger:   log,
		observer: p.Observer,
	}

	if err := qc.healthCheck(); err != nil {
		_ = qc.Close()
		return nil, err
	}

	log.Info("[Qdrant] client connected", nil, nil)
	return qc, nil
}

// healthCheck calls the server health endpoint with the configured timeout.
func (c *QdrantClient) healthCheck() error {
	timeout := c.cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("[Qdrant] health check failed: %w", err)
	}

	c.logger.Debug("[Qdrant] health check passed", nil, map[string]interface{}{
		"title":   resp.GetTitle(),
		"version": resp.GetVersion(),
	})
	return nil
}

// Client returns the underlying Qdrant SDK client.
func (c *QdrantClient) Client() *qdrant.Client {
	return c.api
}

// WithObserver sets the observer for this client and returns the client for method chaining.
func (c *QdrantClient) WithObserver(observer observability.Observer) *QdrantClient {
	c.observer = observer
	return c
}

// WithLogger sets the logger for this client and returns the client for method chaining.
func (c *QdrantClient) WithLogger(log logger.Logger) *QdrantClient {
	c.logger = log
	return c
}

// Close closes the gRPC connection. Subsequent calls return the first result.
func (c *QdrantClient) Close() error {
	if c == nil {
		return nil
	}
	c.closeOnce.Do(func() {
		if c.api != nil {
			c.closeErr = c.api.Close()
		}
		c.logger.Info("[Qdrant] client closed", c.closeErr, nil)
	})
	return c.closeErr
}
