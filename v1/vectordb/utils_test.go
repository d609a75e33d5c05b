package vectordb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNamespaceFilter(t *testing.T) {
	t.Run("namespace only", func(t *testing.T) {
		fs := NamespaceFilter("namespace", NamespaceDocs, "_id", nil)
		require.NotNil(t, fs.Must)
		require.Len(t, fs.Must.Conditions, 1)
		assert.Equal(t, &MatchCondition{Field: "namespace", Value: "docs"}, fs.Must.Conditions[0])
		assert.Nil(t, fs.MustNot)
	})

	t.Run("namespace and ids", func(t *testing.T) {
		fs := NamespaceFilter("namespace", NamespaceQA, "_id", []string{"a", "b"})
		require.Len(t, fs.Must.Conditions, 2)
		assert.Equal(t, &MatchAnyCondition{Field: "_id", Values: []any{"a", "b"}}, fs.Must.Conditions[1])
	})
}

func TestNewMatchAnyRejectsMixedTypes(t *testing.T) {
	assert.Panics(t, func() { NewMatchAny("f", "a", 1) })
	assert.NotPanics(t, func() { NewMatchAny("f", "a", "b") })
}

func TestIndexSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    IndexSpec
		wantErr bool
	}{
		{"valid", IndexSpec{Name: "idx", Dimension: 3, Metric: MetricCosine}, false},
		{"missing name", IndexSpec{Dimension: 3, Metric: MetricCosine}, true},
		{"zero dimension", IndexSpec{Name: "idx", Metric: MetricEuclidean}, true},
		{"unknown metric", IndexSpec{Name: "idx", Dimension: 3, Metric: "manhattan"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIndexSpec)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStaticConnector(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockIndexClient(ctrl)

	got, err := StaticConnector(client)(context.Background())
	require.NoError(t, err)
	assert.Same(t, client, got)
}
