// Package memory is an in-process vectordb backend for tests and local
// development. It keeps every record in maps guarded by a RWMutex and answers
// queries by brute force, so it is only suitable for small data sets.
//
// Scores are distances: 1 - cosine similarity, Euclidean distance, or the
// negated dot product, depending on the index metric.
//
//	client := memory.NewClient()
//	store, err := vectorstore.New(ctx, vectorstore.Params{
//		Config:   cfg,
//		Connect:  client.Connector(),
//		Embedder: embedder,
//	})
package memory
