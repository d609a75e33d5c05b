package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

func newTestIndex(t *testing.T, metric vectordb.Metric) (*Client, vectordb.Index) {
	t.Helper()
	ctx := context.Background()
	c := NewClient()
	require.NoError(t, c.CreateIndex(ctx, vectordb.IndexSpec{Name: "test", Dimension: 2, Metric: metric}))
	idx, err := c.BindIndex(ctx, "test")
	require.NoError(t, err)
	return c, idx
}

func TestClientLifecycle(t *testing.T) {
	ctx := context.Background()
	c := NewClient()

	names, err := c.ListIndexNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	spec := vectordb.IndexSpec{Name: "b", Dimension: 2, Metric: vectordb.MetricCosine}
	require.NoError(t, c.CreateIndex(ctx, spec))
	require.NoError(t, c.CreateIndex(ctx, vectordb.IndexSpec{Name: "a", Dimension: 2, Metric: vectordb.MetricCosine}))
	assert.ErrorIs(t, c.CreateIndex(ctx, spec), vectordb.ErrIndexExists)

	names, err = c.ListIndexNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	_, err = c.BindIndex(ctx, "missing")
	assert.ErrorIs(t, err, vectordb.ErrIndexNotFound)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	_, err = c.ListIndexNames(ctx)
	assert.ErrorIs(t, err, vectordb.ErrClientClosed)
}

func TestQueryOrdersByDistance(t *testing.T) {
	ctx := context.Background()
	_, idx := newTestIndex(t, vectordb.MetricEuclidean)

	require.NoError(t, idx.Upsert(ctx, vectordb.NamespaceDocs, []vectordb.Record{
		{ID: "far", Values: []float32{3, 4}, Metadata: map[string]any{"text": "far"}},
		{ID: "near", Values: []float32{0, 1}, Metadata: map[string]any{"text": "near"}},
		{ID: "mid", Values: []float32{0, 2}},
	}))

	resp, err := idx.Query(ctx, vectordb.QueryRequest{
		Namespace:       vectordb.NamespaceDocs,
		Vector:          []float32{0, 0},
		TopK:            2,
		IncludeMetadata: true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Matches, 2)
	assert.Equal(t, "near", resp.Matches[0].ID)
	assert.InDelta(t, 1.0, resp.Matches[0].Score, 1e-6)
	assert.Equal(t, "mid", resp.Matches[1].ID)
	assert.Equal(t, "near", resp.Matches[0].Metadata["text"])
	assert.Nil(t, resp.Matches[0].Values)
}

func TestNamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	_, idx := newTestIndex(t, vectordb.MetricCosine)

	require.NoError(t, idx.Upsert(ctx, vectordb.NamespaceQA, []vectordb.Record{{ID: "x", Values: []float32{1, 0}}}))

	got, err := idx.Fetch(ctx, vectordb.NamespaceDocs, []string{"x"})
	require.NoError(t, err)
	assert.Empty(t, got.Records)

	resp, err := idx.Query(ctx, vectordb.QueryRequest{Namespace: vectordb.NamespaceDocs, Vector: []float32{1, 0}, TopK: 5})
	require.NoError(t, err)
	assert.Empty(t, resp.Matches)

	require.NoError(t, idx.DeleteAll(ctx, vectordb.NamespaceDocs))
	got, err = idx.Fetch(ctx, vectordb.NamespaceQA, []string{"x"})
	require.NoError(t, err)
	assert.Contains(t, got.Records, "x")
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	_, idx := newTestIndex(t, vectordb.MetricCosine)

	err := idx.Update(ctx, vectordb.NamespaceDocs, "missing", []float32{1, 0}, nil)
	assert.ErrorIs(t, err, vectordb.ErrRecordNotFound)

	require.NoError(t, idx.Upsert(ctx, vectordb.NamespaceDocs, []vectordb.Record{{ID: "x", Values: []float32{1, 0}, Metadata: map[string]any{"text": "old"}}}))
	require.NoError(t, idx.Update(ctx, vectordb.NamespaceDocs, "x", []float32{0, 1}, map[string]any{"text": "new"}))

	got, err := idx.Fetch(ctx, vectordb.NamespaceDocs, []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Records["x"].Metadata["text"])
	assert.Equal(t, []float32{0, 1}, got.Records["x"].Values)

	require.NoError(t, idx.Delete(ctx, vectordb.NamespaceDocs, []string{"x", "never-existed"}))
	got, err = idx.Fetch(ctx, vectordb.NamespaceDocs, []string{"x"})
	require.NoError(t, err)
	assert.Empty(t, got.Records)
}

func TestStoredRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	_, idx := newTestIndex(t, vectordb.MetricCosine)

	meta := map[string]any{"text": "a"}
	require.NoError(t, idx.Upsert(ctx, vectordb.NamespaceDocs, []vectordb.Record{{ID: "x", Values: []float32{1, 0}, Metadata: meta}}))
	meta["text"] = "mutated"

	got, err := idx.Fetch(ctx, vectordb.NamespaceDocs, []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, "a", got.Records["x"].Metadata["text"])
}

func TestDimensionMismatch(t *testing.T) {
	ctx := context.Background()
	_, idx := newTestIndex(t, vectordb.MetricCosine)

	err := idx.Upsert(ctx, vectordb.NamespaceDocs, []vectordb.Record{{ID: "x", Values: []float32{1, 0, 0}}})
	assert.ErrorIs(t, err, vectordb.ErrDimensionMismatch)

	_, err = idx.Query(ctx, vectordb.QueryRequest{Namespace: vectordb.NamespaceDocs, Vector: []float32{1}})
	assert.ErrorIs(t, err, vectordb.ErrDimensionMismatch)
}

func TestDistance(t *testing.T) {
	tests := []struct {
		metric vectordb.Metric
		a, b   []float32
		want   float32
	}{
		{vectordb.MetricCosine, []float32{1, 0}, []float32{1, 0}, 0},
		{vectordb.MetricCosine, []float32{1, 0}, []float32{0, 1}, 1},
		{vectordb.MetricCosine, []float32{1, 0}, []float32{-1, 0}, 2},
		{vectordb.MetricEuclidean, []float32{0, 0}, []float32{3, 4}, 5},
		{vectordb.MetricDotProduct, []float32{1, 2}, []float32{3, 4}, -11},
	}
	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			got, err := distance(tt.metric, tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}

	_, err := distance(vectordb.MetricCosine, []float32{0, 0}, []float32{1, 0})
	assert.Error(t, err)
}
