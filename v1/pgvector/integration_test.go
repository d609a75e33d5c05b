package pgvector

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// PostgresContainer represents a pgvector-enabled Postgres container for testing
type PostgresContainer struct {
	testcontainers.Container
	Config Config
}

func setupPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image: "pgvector/pgvector:pg16",
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}
	mappedPort, err := c.MappedPort(ctx, "5432")
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Connection = Connection{
		Host:     host,
		Port:     mappedPort.Port(),
		User:     "testuser",
		Password: "testpass",
		DbName:   "testdb",
		SSLMode:  "disable",
	}
	return &PostgresContainer{Container: c, Config: cfg}, nil
}

func TestPgVectorWithFXModule(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc, err := setupPostgresContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := pc.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	var adapter *Adapter
	app := fxtest.New(t,
		fx.Provide(func() Config { return pc.Config }),
		FXModule,
		fx.Populate(&adapter),
	)
	app.RequireStart()
	defer app.RequireStop()

	spec := vectordb.IndexSpec{Name: "it_docs", Dimension: 3, Metric: vectordb.MetricCosine}
	require.NoError(t, adapter.CreateIndex(ctx, spec))
	assert.ErrorIs(t, adapter.CreateIndex(ctx, spec), vectordb.ErrIndexExists)

	names, err := adapter.ListIndexNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"it_docs"}, names)

	_, err = adapter.BindIndex(ctx, "missing")
	assert.ErrorIs(t, err, vectordb.ErrIndexNotFound)

	idx, err := adapter.BindIndex(ctx, spec.Name)
	require.NoError(t, err)

	require.NoError(t, idx.Upsert(ctx, vectordb.NamespaceDocs, []vectordb.Record{
		{ID: "a", Values: []float32{1, 0, 0}, Metadata: map[string]any{"text": "alpha"}},
		{ID: "b", Values: []float32{0, 1, 0}, Metadata: map[string]any{"text": "beta"}},
	}))
	require.NoError(t, idx.Upsert(ctx, vectordb.NamespaceQA, []vectordb.Record{
		{ID: "a", Values: []float32{0, 0, 1}, Metadata: map[string]any{"text": "qa"}},
	}))

	t.Run("Query", func(t *testing.T) {
		resp, err := idx.Query(ctx, vectordb.QueryRequest{
			Namespace:       vectordb.NamespaceDocs,
			Vector:          []float32{1, 0, 0},
			TopK:            5,
			IncludeMetadata: true,
			IncludeValues:   true,
		})
		require.NoError(t, err)
		require.Len(t, resp.Matches, 2)
		assert.Equal(t, "a", resp.Matches[0].ID)
		assert.InDelta(t, 0.0, resp.Matches[0].Score, 1e-6)
		assert.InDelta(t, 1.0, resp.Matches[1].Score, 1e-6)
		assert.Equal(t, "alpha", resp.Matches[0].Metadata["text"])
		assert.Equal(t, []float32{1, 0, 0}, resp.Matches[0].Values)
	})

	t.Run("FetchIsNamespaced", func(t *testing.T) {
		docs, err := idx.Fetch(ctx, vectordb.NamespaceDocs, []string{"a"})
		require.NoError(t, err)
		assert.Equal(t, "alpha", docs.Records["a"].Metadata["text"])

		qa, err := idx.Fetch(ctx, vectordb.NamespaceQA, []string{"a", "b"})
		require.NoError(t, err)
		require.Len(t, qa.Records, 1)
		assert.Equal(t, "qa", qa.Records["a"].Metadata["text"])
	})

	t.Run("Update", func(t *testing.T) {
		require.NoError(t, idx.Update(ctx, vectordb.NamespaceDocs, "b", []float32{1, 1, 0}, map[string]any{"text": "beta2"}))
		err := idx.Update(ctx, vectordb.NamespaceDocs, "zzz", []float32{1, 1, 0}, nil)
		assert.ErrorIs(t, err, vectordb.ErrRecordNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, idx.Delete(ctx, vectordb.NamespaceDocs, []string{"a", "nope"}))
		require.NoError(t, idx.DeleteAll(ctx, vectordb.NamespaceDocs))

		docs, err := idx.Fetch(ctx, vectordb.NamespaceDocs, []string{"a", "b"})
		require.NoError(t, err)
		assert.Empty(t, docs.Records)

		qa, err := idx.Fetch(ctx, vectordb.NamespaceQA, []string{"a"})
		require.NoError(t, err)
		assert.Len(t, qa.Records, 1)
	})
}
