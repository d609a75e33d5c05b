package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// Client is an in-process vectordb.IndexClient. Indexes live as long as the
// Client and are shared by every store bound through it.
//
// Client is safe for concurrent use.
type Client struct {
	mu      sync.RWMutex
	indexes map[string]*Index
	closed  bool
}

var _ vectordb.IndexClient = (*Client)(nil)

// NewClient returns an empty client.
func NewClient() *Client {
	return &Client{indexes: make(map[string]*Index)}
}

// Connector returns a vectordb.Connector that always hands out c.
func (c *Client) Connector() vectordb.Connector {
	return vectordb.StaticConnector(c)
}

// ListIndexNames returns the index names in lexical order.
func (c *Client) ListIndexNames(_ context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, vectordb.ErrClientClosed
	}

	names := make([]string, 0, len(c.indexes))
	for name := range c.indexes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// CreateIndex registers a new empty index. Placement is ignored.
func (c *Client) CreateIndex(_ context.Context, spec vectordb.IndexSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return vectordb.ErrClientClosed
	}
	if _, ok := c.indexes[spec.Name]; ok {
		return fmt.Errorf("%w: %s", vectordb.ErrIndexExists, spec.Name)
	}

	c.indexes[spec.Name] = newIndex(spec)
	return nil
}

// BindIndex returns the index registered under name.
func (c *Client) BindIndex(_ context.Context, name string) (vectordb.Index, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, vectordb.ErrClientClosed
	}
	idx, ok := c.indexes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", vectordb.ErrIndexNotFound, name)
	}
	return idx, nil
}

// Close marks the client closed. Bound indexes keep working so a store
// holding one can still drain; new list, create and bind calls fail.
func (c *Client) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}
