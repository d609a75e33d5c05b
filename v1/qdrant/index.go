package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// collectionIndex is a vectordb.Index bound to one collection.
type collectionIndex struct {
	client    *QdrantClient
	name      string
	dimension int
	distance  qdrant.Distance
}

var (
	_ vectordb.Index         = (*collectionIndex)(nil)
	_ vectordb.ScoreReporter = (*collectionIndex)(nil)
)

// ScoreKind reports distances for every collection; see distanceScore.
func (x *collectionIndex) ScoreKind() vectordb.ScoreKind {
	return vectordb.ScoreDistance
}

func (x *collectionIndex) checkDimension(v []float32) error {
	if x.dimension > 0 && len(v) != x.dimension {
		return fmt.Errorf("%w: collection %s expects %d, got %d", vectordb.ErrDimensionMismatch, x.name, x.dimension, len(v))
	}
	return nil
}

// Upsert writes all records in one blocking request.
func (x *collectionIndex) Upsert(ctx context.Context, ns vectordb.Namespace, records []vectordb.Record) (err error) {
	start := time.Now()
	defer func() { x.client.observeOperation("upsert", x.name, string(ns), start, err, int64(len(records))) }()

	if len(records) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, 0, len(records))
	for _, r := range records {
		if err := x.checkDimension(r.Values); err != nil {
			return fmt.Errorf("record %s: %w", r.ID, err)
		}
		payload, err := BuildPayload(ns, r.ID, r.Metadata)
		if err != nil {
			return fmt.Errorf("record %s: %w", r.ID, err)
		}
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(PointID(ns, r.ID)),
			Vectors: qdrant.NewVectors(r.Values...),
			Payload: payload,
		})
	}

	_, err = x.client.api.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: x.name,
		Points:         points,
		Wait:           ptr(true),
	})
	if err != nil {
		return fmt.Errorf("[Qdrant] upsert failed: %w", err)
	}
	return nil
}

// Update replaces the vector of an existing point and overwrites its payload.
// Qdrant rejects vector updates for unknown points, so missing ids fail.
func (x *collectionIndex) Update(ctx context.Context, ns vectordb.Namespace, id string, values []float32, metadata map[string]any) (err error) {
	start := time.Now()
	defer func() { x.client.observeOperation("update", x.name, string(ns), start, err, 1) }()

	if err := x.checkDimension(values); err != nil {
		return err
	}
	payload, err := BuildPayload(ns, id, metadata)
	if err != nil {
		return err
	}

	pointID := qdrant.NewID(PointID(ns, id))

	_, err = x.client.api.UpdateVectors(ctx, &qdrant.UpdatePointVectors{
		CollectionName: x.name,
		Wait:           ptr(true),
		Points: []*qdrant.PointVectors{{
			Id:      pointID,
			Vectors: qdrant.NewVectors(values...),
		}},
	})
	if err != nil {
		return fmt.Errorf("[Qdrant] update vectors failed for %s: %w", id, err)
	}

	_, err = x.client.api.OverwritePayload(ctx, &qdrant.SetPayloadPoints{
		CollectionName: x.name,
		Wait:           ptr(true),
		Payload:        payload,
		PointsSelector: qdrant.NewPointsSelector(pointID),
	})
	if err != nil {
		return fmt.Errorf("[Qdrant] overwrite payload failed for %s: %w", id, err)
	}
	return nil
}

// Delete removes the given ids from ns. Unknown ids are ignored by Qdrant.
func (x *collectionIndex) Delete(ctx context.Context, ns vectordb.Namespace, ids []string) (err error) {
	start := time.Now()
	defer func() { x.client.observeOperation("delete", x.name, string(ns), start, err, int64(len(ids))) }()

	if len(ids) == 0 {
		return nil
	}
	return x.deleteByFilter(ctx, namespaceFilter(ns, ids))
}

// DeleteAll removes every point whose namespace field equals ns.
func (x *collectionIndex) DeleteAll(ctx context.Context, ns vectordb.Namespace) (err error) {
	start := time.Now()
	defer func() { x.client.observeOperation("delete_all", x.name, string(ns), start, err, 0) }()

	return x.deleteByFilter(ctx, namespaceFilter(ns, nil))
}

func (x *collectionIndex) deleteByFilter(ctx context.Context, filter *qdrant.Filter) error {
	resp, err := x.client.api.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: x.name,
		Wait:           ptr(true),
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{Filter: filter},
		},
	})
	if err != nil {
		return fmt.Errorf("[Qdrant] delete failed: %w", err)
	}

	x.client.logger.Debug("[Qdrant] delete completed", nil, map[string]interface{}{
		"collection": x.name,
		"status":     resp.GetStatus().String(),
	})
	return nil
}

// Query runs a namespace-filtered nearest-neighbour query. The payload is
// always requested because it carries the caller id.
func (x *collectionIndex) Query(ctx context.Context, req vectordb.QueryRequest) (resp *vectordb.QueryResponse, err error) {
	start := time.Now()
	defer func() {
		var n int64
		if resp != nil {
			n = int64(len(resp.Matches))
		}
		x.client.observeOperation("query", x.name, string(req.Namespace), start, err, n)
	}()

	if err := x.checkDimension(req.Vector); err != nil {
		return nil, err
	}
	if req.TopK <= 0 {
		return &vectordb.QueryResponse{Namespace: req.Namespace, Matches: []vectordb.Match{}}, nil
	}

	points, err := x.client.api.Query(ctx, &qdrant.QueryPoints{
		CollectionName: x.name,
		Query:          qdrant.NewQuery(req.Vector...),
		Limit:          ptr(uint64(req.TopK)),
		Filter:         namespaceFilter(req.Namespace, nil),
		WithPayload:    qdrant.NewWithPayload(true),
		WithVectors:    qdrant.NewWithVectors(req.IncludeValues),
	})
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] query failed: %w", err)
	}

	matches := make([]vectordb.Match, 0, len(points))
	for _, p := range points {
		id, metadata := recordFields(p.GetPayload())
		m := vectordb.Match{ID: id, Score: distanceScore(x.distance, p.GetScore())}
		if req.IncludeMetadata {
			m.Metadata = metadata
		}
		if req.IncludeValues {
			m.Values = vectorData(p.GetVectors())
		}
		matches = append(matches, m)
	}

	return &vectordb.QueryResponse{Namespace: req.Namespace, Matches: matches}, nil
}

// Fetch retrieves points by their derived ids.
func (x *collectionIndex) Fetch(ctx context.Context, ns vectordb.Namespace, ids []string) (resp *vectordb.FetchResponse, err error) {
	start := time.Now()
	defer func() {
		var n int64
		if resp != nil {
			n = int64(len(resp.Records))
		}
		x.client.observeOperation("fetch", x.name, string(ns), start, err, n)
	}()

	resp = &vectordb.FetchResponse{Namespace: ns, Records: make(map[string]vectordb.Record, len(ids))}
	if len(ids) == 0 {
		return resp, nil
	}

	points, err := x.client.api.Get(ctx, &qdrant.GetPoints{
		CollectionName: x.name,
		Ids:            pointIDs(ns, ids),
		WithPayload:    qdrant.NewWithPayload(true),
		WithVectors:    qdrant.NewWithVectors(true),
	})
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] get points failed: %w", err)
	}

	for _, p := range points {
		payload := p.GetPayload()
		if payload[NamespaceField].GetStringValue() != string(ns) {
			continue
		}
		id, metadata := recordFields(payload)
		resp.Records[id] = vectordb.Record{
			ID:       id,
			Values:   vectorData(p.GetVectors()),
			Metadata: metadata,
		}
	}
	return resp, nil
}
