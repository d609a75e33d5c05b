package memory

import (
	"fmt"
	"math"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// distance returns the distance between a and b under metric. Every metric
// is expressed so that lower values mean closer vectors:
//
//	cosine      1 - cos(a, b)      in [0, 2]
//	euclidean   ||a - b||          in [0, inf)
//	dotproduct  -(a . b)
func distance(metric vectordb.Metric, a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", vectordb.ErrDimensionMismatch, len(a), len(b))
	}

	switch metric {
	case vectordb.MetricCosine:
		sim, err := cosineSimilarity(a, b)
		if err != nil {
			return 0, err
		}
		return float32(1 - sim), nil
	case vectordb.MetricEuclidean:
		return float32(l2Distance(a, b)), nil
	case vectordb.MetricDotProduct:
		return float32(-dot(a, b)), nil
	default:
		return 0, fmt.Errorf("%w: unsupported metric %q", vectordb.ErrInvalidIndexSpec, metric)
	}
}

func cosineSimilarity(a, b []float32) (float64, error) {
	var d, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		d += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if na2 == 0 || nb2 == 0 {
		return 0, fmt.Errorf("memory: cosine similarity with zero-magnitude vector")
	}
	return d / (math.Sqrt(na2) * math.Sqrt(nb2)), nil
}

func l2Distance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
