package vectorstore

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// Config holds the immutable settings of a Store.
type Config struct {
	// IndexName is looked up, and created if missing, when the store is
	// constructed with ByName or without an IndexRef.
	IndexName string `yaml:"index_name" env:"VECTORSTORE_INDEX_NAME"`

	// Dimension is the length of every embedding.
	Dimension int `yaml:"dimension" env:"VECTORSTORE_DIMENSION"`

	// Metric is used when the index has to be created.
	Metric vectordb.Metric `yaml:"metric" env:"VECTORSTORE_METRIC"`

	// Placement is used when the index has to be created.
	Placement vectordb.PlacementSpec `yaml:"placement"`

	// MaxSamples is the result count when a query passes k == 0.
	MaxSamples int `yaml:"max_samples" env:"VECTORSTORE_MAX_SAMPLES"`

	// SimilarityThreshold is the acceptance bound for query matches: an upper
	// bound for distances, a lower bound for similarities.
	SimilarityThreshold float32 `yaml:"similarity_threshold" env:"VECTORSTORE_SIMILARITY_THRESHOLD"`

	// ScoreKind forces the direction of the threshold comparison. When empty
	// the bound index decides through vectordb.ScoreReporter, and distance is
	// assumed if it does not.
	ScoreKind vectordb.ScoreKind `yaml:"score_kind" env:"VECTORSTORE_SCORE_KIND"`
}

// DefaultConfig returns the default configuration: index "vectorstore",
// 1536 dimensions, cosine metric, one sample, threshold 1.5.
func DefaultConfig() *Config {
	return &Config{
		IndexName:           "vectorstore",
		Dimension:           1536,
		Metric:              vectordb.MetricCosine,
		Placement:           vectordb.DefaultPlacement(),
		MaxSamples:          1,
		SimilarityThreshold: 1.5,
	}
}

// WithIndexName sets the index name.
func (c *Config) WithIndexName(name string) *Config {
	c.IndexName = name
	return c
}

// WithDimension sets the embedding dimensionality.
func (c *Config) WithDimension(dim int) *Config {
	c.Dimension = dim
	return c
}

// WithMetric sets the distance metric used on index creation.
func (c *Config) WithMetric(m vectordb.Metric) *Config {
	c.Metric = m
	return c
}

// WithPlacement sets where a newly created index is provisioned.
func (c *Config) WithPlacement(p vectordb.PlacementSpec) *Config {
	c.Placement = p
	return c
}

// WithMaxSamples sets the default number of query results.
func (c *Config) WithMaxSamples(n int) *Config {
	c.MaxSamples = n
	return c
}

// WithSimilarityThreshold sets the acceptance threshold for query matches.
func (c *Config) WithSimilarityThreshold(t float32) *Config {
	c.SimilarityThreshold = t
	return c
}

// WithScoreKind forces the direction of the threshold comparison.
func (c *Config) WithScoreKind(k vectordb.ScoreKind) *Config {
	c.ScoreKind = k
	return c
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Dimension <= 0 {
		return fmt.Errorf("%w: dimension must be positive, got %d", ErrValidation, c.Dimension)
	}
	if !c.Metric.Valid() {
		return fmt.Errorf("%w: unsupported metric %q", ErrValidation, c.Metric)
	}
	if c.MaxSamples <= 0 {
		return fmt.Errorf("%w: max samples must be positive, got %d", ErrValidation, c.MaxSamples)
	}
	switch c.ScoreKind {
	case "", vectordb.ScoreDistance, vectordb.ScoreSimilarity:
	default:
		return fmt.Errorf("%w: unsupported score kind %q", ErrValidation, c.ScoreKind)
	}
	return nil
}

// NewConfigFromEnv starts from DefaultConfig and applies VECTORSTORE_*
// environment variables, loading a .env file first if one exists.
func NewConfigFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if v := os.Getenv("VECTORSTORE_INDEX_NAME"); v != "" {
		cfg.IndexName = v
	}
	if v := os.Getenv("VECTORSTORE_METRIC"); v != "" {
		cfg.Metric = vectordb.Metric(v)
	}
	if v := os.Getenv("VECTORSTORE_SCORE_KIND"); v != "" {
		cfg.ScoreKind = vectordb.ScoreKind(v)
	}
	if v := os.Getenv("VECTORSTORE_CLOUD"); v != "" {
		cfg.Placement.Cloud = v
	}
	if v := os.Getenv("VECTORSTORE_REGION"); v != "" {
		cfg.Placement.Region = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"VECTORSTORE_DIMENSION", &cfg.Dimension},
		{"VECTORSTORE_MAX_SAMPLES", &cfg.MaxSamples},
	}
	for _, e := range ints {
		if v := os.Getenv(e.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrValidation, e.key, err)
			}
			*e.dst = n
		}
	}

	uints := []struct {
		key string
		dst *uint32
	}{
		{"VECTORSTORE_SHARDS", &cfg.Placement.Shards},
		{"VECTORSTORE_REPLICAS", &cfg.Placement.Replicas},
	}
	for _, e := range uints {
		if v := os.Getenv(e.key); v != "" {
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrValidation, e.key, err)
			}
			*e.dst = uint32(n)
		}
	}

	if v := os.Getenv("VECTORSTORE_SIMILARITY_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: VECTORSTORE_SIMILARITY_THRESHOLD: %w", ErrValidation, err)
		}
		cfg.SimilarityThreshold = float32(f)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
