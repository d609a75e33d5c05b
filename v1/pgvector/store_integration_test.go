package pgvector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/vectorstore/v1/embedding"
	"github.com/Aleph-Alpha/vectorstore/v1/vectorstore"
)

const storeTestDim = 8

// runeBucketEmbedder gives equal texts equal vectors; the constant first
// component keeps every vector non-zero.
func runeBucketEmbedder() embedding.Func {
	return func(_ context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i, text := range texts {
			v := make([]float32, storeTestDim)
			v[0] = 1
			for _, r := range text {
				v[1+int(r)%(storeTestDim-1)]++
			}
			out[i] = v
		}
		return out, nil
	}
}

func TestVectorStoreOnPgVector(t *testing.T) {
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

	// default config: cosine metric, threshold 1.5
	store, err := vectorstore.New(ctx, vectorstore.Params{
		Config:   vectorstore.DefaultConfig().WithIndexName("it_store").WithDimension(storeTestDim),
		Connect:  Connector(PostgresParams{Config: pc.Config}),
		Embedder: runeBucketEmbedder(),
	})
	require.NoError(t, err)
	defer func() { assert.NoError(t, store.Close()) }()

	_, err = store.AddDocs(ctx, []string{"hello world", "the quick brown fox"}, nil, nil)
	require.NoError(t, err)

	docs, err := store.GetRelevantDocsDocuments(ctx, "hello world", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello world"}, docs)

	res, err := store.GetRelevantDocs(ctx, "hello world", 1)
	require.NoError(t, err)
	require.Len(t, res.Distances[0], 1)
	assert.InDelta(t, 0, res.Distances[0][0], 1e-4)

	_, err = store.AddQuestionAnswer(ctx, []string{"2+2?"}, []string{"print(4)"}, []string{"sum"}, nil)
	require.NoError(t, err)

	qa, err := store.GetRelevantQADocuments(ctx, vectorstore.FormatQA("2+2?", "print(4)"), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q: 2+2?\nA: print(4)"}, qa)
}
