package qdrant

import (
	"context"
	"fmt"
	"slices"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// Adapter implements vectordb.IndexClient on Qdrant. Each index is a
// collection; namespaces are a keyword payload field inside it.
type Adapter struct {
	client *QdrantClient
}

var _ vectordb.IndexClient = (*Adapter)(nil)

// NewAdapter wraps a connected QdrantClient.
func NewAdapter(client *QdrantClient) *Adapter {
	return &Adapter{client: client}
}

// Connector returns a vectordb.Connector that dials Qdrant with p on every
// call. Construction failures are returned to the store unchanged.
func Connector(p QdrantParams) vectordb.Connector {
	return func(context.Context) (vectordb.IndexClient, error) {
		client, err := NewQdrantClient(p)
		if err != nil {
			return nil, err
		}
		return NewAdapter(client), nil
	}
}

// ListIndexNames lists collection names.
func (a *Adapter) ListIndexNames(ctx context.Context) (names []string, err error) {
	start := time.Now()
	defer func() { a.client.observeOperation("list_collections", "", "", start, err, int64(len(names))) }()

	names, err = a.client.api.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to list collections: %w", err)
	}
	return names, nil
}

// CreateIndex creates a collection with a keyword index on the namespace field.
// Shards and Replicas from the placement are applied when set.
func (a *Adapter) CreateIndex(ctx context.Context, spec vectordb.IndexSpec) (err error) {
	start := time.Now()
	defer func() { a.client.observeOperation("create_collection", spec.Name, "", start, err, 0) }()

	if err := spec.Validate(); err != nil {
		return err
	}
	distance, err := toDistance(spec.Metric)
	if err != nil {
		return err
	}

	req := &qdrant.CreateCollection{
		CollectionName: spec.Name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(spec.Dimension),
			Distance: distance,
		}),
	}
	if spec.Placement.Shards > 0 {
		req.ShardNumber = ptr(spec.Placement.Shards)
	}
	if spec.Placement.Replicas > 0 {
		req.ReplicationFactor = ptr(spec.Placement.Replicas)
	}

	if err := a.client.api.CreateCollection(ctx, req); err != nil {
		return fmt.Errorf("[Qdrant] failed to create collection '%s': %w", spec.Name, err)
	}

	_, err = a.client.api.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
		CollectionName: spec.Name,
		FieldName:      NamespaceField,
		FieldType:      qdrant.FieldType_FieldTypeKeyword.Enum(),
		Wait:           ptr(true),
	})
	if err != nil {
		return fmt.Errorf("[Qdrant] failed to index namespace field of '%s': %w", spec.Name, err)
	}

	a.client.logger.Info("[Qdrant] created collection", nil, map[string]interface{}{
		"collection": spec.Name,
		"dimension":  spec.Dimension,
		"distance":   distance.String(),
	})
	return nil
}

// BindIndex reads the collection's vector parameters and returns a handle.
func (a *Adapter) BindIndex(ctx context.Context, name string) (idx vectordb.Index, err error) {
	start := time.Now()
	defer func() { a.client.observeOperation("bind_collection", name, "", start, err, 0) }()

	names, err := a.client.api.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to list collections: %w", err)
	}
	if !slices.Contains(names, name) {
		return nil, fmt.Errorf("%w: %s", vectordb.ErrIndexNotFound, name)
	}

	info, err := a.client.api.GetCollectionInfo(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to get collection '%s': %w", name, err)
	}
	size, distance := extractVectorDetails(info)

	return &collectionIndex{
		client:    a.client,
		name:      name,
		dimension: size,
		distance:  distance,
	}, nil
}

// Close closes the underlying client.
func (a *Adapter) Close() error {
	return a.client.Close()
}
