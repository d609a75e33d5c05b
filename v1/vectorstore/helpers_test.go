package vectorstore

import (
	"context"
	"crypto/md5"
	"encoding/binary"
	"math"
	"testing"

	"github.com/Aleph-Alpha/vectorstore/v1/embedding"
)

const testDim = 4

// hashEmbedder maps equal texts to equal vectors. Different texts get
// unrelated vectors.
func hashEmbedder(dim int) embedding.Func {
	return func(_ context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i, t := range texts {
			sum := md5.Sum([]byte(t))
			v := make([]float32, dim)
			for j := range v {
				b := sum[(j*4)%len(sum):]
				if len(b) < 4 {
					b = sum[:4]
				}
				v[j] = float32(binary.LittleEndian.Uint32(b))/math.MaxUint32 - 0.5
			}
			out[i] = v
		}
		return out, nil
	}
}

// recordingEmbedder returns constant vectors and remembers every call.
type recordingEmbedder struct {
	dim   int
	calls [][]string
}

func (r *recordingEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	r.calls = append(r.calls, append([]string(nil), texts...))
	out := make([][]float32, len(texts))
	for i := range out {
		v := make([]float32, r.dim)
		v[0] = float32(i + 1)
		out[i] = v
	}
	return out, nil
}

func failingEmbedder(t *testing.T) embedding.Func {
	return func(context.Context, []string) ([][]float32, error) {
		t.Fatal("embedder must not be called")
		return nil, nil
	}
}

func testConfig() *Config {
	return DefaultConfig().WithDimension(testDim)
}
