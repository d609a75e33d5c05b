package vectorstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "vectorstore", cfg.IndexName)
	assert.Equal(t, 1536, cfg.Dimension)
	assert.Equal(t, vectordb.MetricCosine, cfg.Metric)
	assert.Equal(t, 1, cfg.MaxSamples)
	assert.Equal(t, float32(1.5), cfg.SimilarityThreshold)
	assert.Equal(t, vectordb.DefaultPlacement(), cfg.Placement)
	assert.Empty(t, cfg.ScoreKind)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"zero dimension", DefaultConfig().WithDimension(0)},
		{"unknown metric", DefaultConfig().WithMetric("hamming")},
		{"zero samples", DefaultConfig().WithMaxSamples(0)},
		{"unknown score kind", DefaultConfig().WithScoreKind("rank")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, IsValidationError(tt.cfg.Validate()))
		})
	}
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("VECTORSTORE_INDEX_NAME", "kb")
	t.Setenv("VECTORSTORE_DIMENSION", "768")
	t.Setenv("VECTORSTORE_METRIC", "dotproduct")
	t.Setenv("VECTORSTORE_MAX_SAMPLES", "5")
	t.Setenv("VECTORSTORE_SIMILARITY_THRESHOLD", "0.25")
	t.Setenv("VECTORSTORE_SCORE_KIND", "similarity")
	t.Setenv("VECTORSTORE_REGION", "eu-west-1")
	t.Setenv("VECTORSTORE_SHARDS", "2")

	cfg, err := NewConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "kb", cfg.IndexName)
	assert.Equal(t, 768, cfg.Dimension)
	assert.Equal(t, vectordb.MetricDotProduct, cfg.Metric)
	assert.Equal(t, 5, cfg.MaxSamples)
	assert.Equal(t, float32(0.25), cfg.SimilarityThreshold)
	assert.Equal(t, vectordb.ScoreSimilarity, cfg.ScoreKind)
	assert.Equal(t, "aws", cfg.Placement.Cloud)
	assert.Equal(t, "eu-west-1", cfg.Placement.Region)
	assert.Equal(t, uint32(2), cfg.Placement.Shards)
}

func TestNewConfigFromEnv_Invalid(t *testing.T) {
	t.Setenv("VECTORSTORE_DIMENSION", "many")

	_, err := NewConfigFromEnv()
	assert.True(t, IsValidationError(err))
}
