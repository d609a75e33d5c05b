// Package qdrant implements the vectordb contract on top of Qdrant
// (https://qdrant.tech) using the official gRPC client.
//
// # Data layout
//
// One vectordb index is one Qdrant collection. Namespaces share the
// collection and are told apart by payload:
//
//	{
//	  "namespace": "qa",            // keyword-indexed at collection creation
//	  "record_id": "1f0c...-qa",    // the caller's id
//	  "custom":    {"text": "..."}  // the caller's metadata
//	}
//
// Point ids are UUIDv5 values derived from namespace and record id (PointID),
// so the same record id can exist in both namespaces without collisions and
// any string is accepted as a record id.
//
// # Scores
//
// Qdrant returns similarities for Cosine and Dot collections and distances
// for Euclid and Manhattan ones. Query converts them to distances (1-sim for
// Cosine, the negated product for Dot) and the bound index reports
// vectordb.ScoreDistance. With the store's default threshold of 1.5 a cosine
// match is kept unless its vectors point more than 120 degrees apart.
//
// # Usage
//
//	cfg := qdrant.FromEndpoint("localhost").WithApiKey(os.Getenv("QDRANT_API_KEY"))
//	store, err := vectorstore.New(ctx, vectorstore.Params{
//		Config:   vectorstore.DefaultConfig(),
//		Connect:  qdrant.Connector(qdrant.QdrantParams{Config: cfg, Logger: log}),
//		Embedder: embedder,
//	})
//
// With Fx, include qdrant.FXModule; it provides a vectordb.Connector.
//
// # Observability
//
// When an observability.Observer is supplied, every collection and point
// operation is reported with component "qdrant", the collection as resource
// and the namespace as sub-resource.
package qdrant
