package embedding

import "context"

// Embedder turns texts into vectors. The result has one vector per input
// text, in input order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Func adapts a plain function to Embedder.
type Func func(ctx context.Context, texts []string) ([][]float32, error)

// Embed calls f.
func (f Func) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return f(ctx, texts)
}
