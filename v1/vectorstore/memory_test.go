package vectorstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/vectorstore/v1/memory"
	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

func newMemoryStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(context.Background(), Params{
		Config:   testConfig(),
		Connect:  memory.NewClient().Connector(),
		Embedder: hashEmbedder(testDim),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestMemory_DocsRoundTrip(t *testing.T) {
	store := newMemoryStore(t)
	ctx := context.Background()

	ids, err := store.AddDocs(ctx, []string{"hello"}, []string{"x"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, ids)

	res, err := store.GetRelevantDocsByID(ctx, []string{"x"})
	require.NoError(t, err)
	require.Contains(t, res.Records, "x")
	assert.Equal(t, "hello", res.Records["x"].Metadata[TextKey])
	assert.Len(t, res.Records["x"].Values, testDim)
}

func TestMemory_NamespaceIsolation(t *testing.T) {
	store := newMemoryStore(t)
	ctx := context.Background()

	_, err := store.AddQuestionAnswer(ctx, []string{"2+2?"}, []string{"print(4)"}, []string{"shared"}, nil)
	require.NoError(t, err)

	docs, err := store.GetRelevantDocsByID(ctx, []string{"shared"})
	require.NoError(t, err)
	assert.Empty(t, docs.Records)

	_, err = store.AddDocs(ctx, []string{"only a doc"}, []string{"doc-only"}, nil)
	require.NoError(t, err)

	qa, err := store.GetRelevantQuestionAnswersByID(ctx, []string{"shared", "doc-only"})
	require.NoError(t, err)
	assert.Len(t, qa.Records, 1)
	assert.Equal(t, "Q: 2+2?\nA: print(4)", qa.Records["shared"].Metadata[TextKey])

	found, err := store.GetRelevantDocsDocuments(ctx, "Q: 2+2?\nA: print(4)", 5)
	require.NoError(t, err)
	assert.NotContains(t, found, "Q: 2+2?\nA: print(4)")
}

func TestMemory_QueryFindsExactText(t *testing.T) {
	store := newMemoryStore(t)
	ctx := context.Background()

	_, err := store.AddQuestionAnswer(ctx,
		[]string{"how to sum", "how to sort"},
		[]string{"sum(xs)", "sorted(xs)"},
		nil, nil)
	require.NoError(t, err)

	docs, err := store.GetRelevantQADocuments(ctx, FormatQA("how to sort", "sorted(xs)"), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q: how to sort\nA: sorted(xs)"}, docs)

	res, err := store.GetRelevantQuestionAnswers(ctx, FormatQA("how to sum", "sum(xs)"), 1)
	require.NoError(t, err)
	require.Len(t, res.Distances[0], 1)
	assert.InDelta(t, 0, res.Distances[0][0], 1e-5)
	assert.Regexp(t, `-qa$`, res.IDs[0][0])
}

func TestMemory_UpdateAndDelete(t *testing.T) {
	store := newMemoryStore(t)
	ctx := context.Background()

	_, err := store.AddDocs(ctx, []string{"old text", "other"}, []string{"d1", "d2"},
		[]map[string]any{{"version": 1}, nil})
	require.NoError(t, err)

	err = store.UpdateDocs(ctx, []string{"d1"}, []string{"new text"}, []map[string]any{{"version": 2}})
	require.NoError(t, err)

	res, err := store.GetRelevantDocsByID(ctx, []string{"d1"})
	require.NoError(t, err)
	assert.Equal(t, "new text", res.Records["d1"].Metadata[TextKey])
	assert.EqualValues(t, 2, res.Records["d1"].Metadata["version"])

	err = store.UpdateDocs(ctx, []string{"missing"}, []string{"x"}, nil)
	assert.ErrorIs(t, err, vectordb.ErrRecordNotFound)

	ok, err := store.DeleteDocs(ctx, []string{"d1", "never-existed"})
	require.NoError(t, err)
	assert.True(t, ok)

	res, err = store.GetRelevantDocsByID(ctx, []string{"d1", "d2"})
	require.NoError(t, err)
	assert.NotContains(t, res.Records, "d1")
	assert.Contains(t, res.Records, "d2")

	ok, err = store.DeleteAllDocs(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	res, err = store.GetRelevantDocsByID(ctx, []string{"d2"})
	require.NoError(t, err)
	assert.Empty(t, res.Records)
}

func TestMemory_ReusesExistingIndex(t *testing.T) {
	client := memory.NewClient()
	ctx := context.Background()

	first, err := New(ctx, Params{Config: testConfig(), Connect: vectordb.StaticConnector(client), Embedder: hashEmbedder(testDim)})
	require.NoError(t, err)
	_, err = first.AddDocs(ctx, []string{"persisted"}, []string{"p"}, nil)
	require.NoError(t, err)

	names, err := client.ListIndexNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"vectorstore"}, names)

	idx, err := client.BindIndex(ctx, "vectorstore")
	require.NoError(t, err)

	second, err := New(ctx, Params{Config: testConfig(), Index: ByHandle(idx), Embedder: hashEmbedder(testDim)})
	require.NoError(t, err)
	defer second.Close()

	res, err := second.GetRelevantDocsByID(ctx, []string{"p"})
	require.NoError(t, err)
	assert.Contains(t, res.Records, "p")

	require.NoError(t, first.Close())
}
