package vectorstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/Aleph-Alpha/vectorstore/v1/embedding"
	"github.com/Aleph-Alpha/vectorstore/v1/memory"
	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

func TestFXModule(t *testing.T) {
	client := memory.NewClient()
	var vs VectorStore

	app := fxtest.New(t,
		fx.Supply(testConfig().WithIndexName("fx-index")),
		fx.Provide(
			func() embedding.Embedder { return hashEmbedder(testDim) },
			func() vectordb.Connector { return client.Connector() },
		),
		FXModule,
		fx.Populate(&vs),
	)
	app.RequireStart()

	ids, err := vs.AddDocs(context.Background(), []string{"wired"}, nil, nil)
	require.NoError(t, err)
	assert.Len(t, ids, 1)

	names, err := client.ListIndexNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"fx-index"}, names)

	app.RequireStop()

	_, err = vs.AddDocs(context.Background(), []string{"late"}, nil, nil)
	assert.ErrorIs(t, err, ErrClosed)
}
