package vectordb

import "fmt"

// Namespace is a logical partition inside one index.
type Namespace string

const (
	// NamespaceQA holds formatted question/answer pairs.
	NamespaceQA Namespace = "qa"
	// NamespaceDocs holds free-form documents.
	NamespaceDocs Namespace = "docs"
)

// Metric is the distance metric an index is created with.
type Metric string

const (
	MetricCosine     Metric = "cosine"
	MetricEuclidean  Metric = "euclidean"
	MetricDotProduct Metric = "dotproduct"
)

// Valid reports whether m is one of the supported metrics.
func (m Metric) Valid() bool {
	switch m {
	case MetricCosine, MetricEuclidean, MetricDotProduct:
		return true
	}
	return false
}

// ScoreKind tells which direction of Match.Score is better.
type ScoreKind string

const (
	// ScoreDistance means lower scores are closer matches.
	ScoreDistance ScoreKind = "distance"
	// ScoreSimilarity means higher scores are closer matches.
	ScoreSimilarity ScoreKind = "similarity"
)

// PlacementSpec describes where a managed index is provisioned.
// Self-hosted backends map Shards and Replicas and ignore Cloud and Region.
type PlacementSpec struct {
	Cloud    string `json:"cloud" yaml:"cloud" env:"VECTORSTORE_CLOUD"`
	Region   string `json:"region" yaml:"region" env:"VECTORSTORE_REGION"`
	Shards   uint32 `json:"shards,omitempty" yaml:"shards" env:"VECTORSTORE_SHARDS"`
	Replicas uint32 `json:"replicas,omitempty" yaml:"replicas" env:"VECTORSTORE_REPLICAS"`
}

// DefaultPlacement is a serverless index in aws/us-east-1.
func DefaultPlacement() PlacementSpec {
	return PlacementSpec{Cloud: "aws", Region: "us-east-1"}
}

// IndexSpec is the input to IndexClient.CreateIndex.
type IndexSpec struct {
	Name      string        `json:"name"`
	Dimension int           `json:"dimension"`
	Metric    Metric        `json:"metric"`
	Placement PlacementSpec `json:"placement"`
}

// Validate checks the fields every backend depends on.
func (s IndexSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: index name is required", ErrInvalidIndexSpec)
	}
	if s.Dimension <= 0 {
		return fmt.Errorf("%w: dimension must be positive, got %d", ErrInvalidIndexSpec, s.Dimension)
	}
	if !s.Metric.Valid() {
		return fmt.Errorf("%w: unsupported metric %q", ErrInvalidIndexSpec, s.Metric)
	}
	return nil
}

// Record is one stored vector.
type Record struct {
	// ID is unique within its namespace.
	ID string `json:"id"`

	// Values is the dense embedding.
	Values []float32 `json:"values"`

	// Metadata is stored alongside the vector.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// QueryRequest is a namespace-scoped top-k similarity query.
type QueryRequest struct {
	Namespace       Namespace `json:"namespace"`
	Vector          []float32 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
	IncludeValues   bool      `json:"includeValues"`
}

// Match is one query hit.
type Match struct {
	ID string `json:"id"`

	// Score is a distance or a similarity depending on the backend; see ScoreReporter.
	Score float32 `json:"score"`

	// Values is only set when the query asked for it.
	Values []float32 `json:"values,omitempty"`

	// Metadata is only set when the query asked for it.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// QueryResponse holds matches in the backend's ranking order, best first.
type QueryResponse struct {
	Namespace Namespace `json:"namespace"`
	Matches   []Match   `json:"matches"`
}

// FetchResponse maps IDs to the records found.
type FetchResponse struct {
	Namespace Namespace         `json:"namespace"`
	Records   map[string]Record `json:"vectors"`
}
