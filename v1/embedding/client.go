package embedding

import (
	"context"
	"fmt"
)

// Client is the public entrypoint for computing embeddings. It hides the
// provider behind the Embedder interface and checks the vector dimension
// when one is configured.
type Client struct {
	provider  Embedder
	dimension int
}

var _ Embedder = (*Client)(nil)

// NewClient constructs a Client from Config.
// It validates the config and constructs the selected provider.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	var (
		p   Embedder
		err error
	)
	switch cfg.Provider {
	case ProviderGemini:
		p, err = newGeminiProvider(context.Background(), cfg)
	default:
		p, err = newInferenceProvider(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create provider: %w", err)
	}

	return &Client{provider: p, dimension: cfg.Dimension}, nil
}

// Embed computes one embedding per text.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors, err := c.provider.Embed(ctx, texts)
	if err != nil {
		return nil, err
	}
	if c.dimension > 0 {
		for i, v := range vectors {
			if len(v) != c.dimension {
				return nil, fmt.Errorf("embedding: vector %d has dimension %d, want %d", i, len(v), c.dimension)
			}
		}
	}
	return vectors, nil
}

// Close releases provider resources if the provider holds any.
func (c *Client) Close() error {
	if closer, ok := c.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
