// Package vectordb defines the database-agnostic contract between the vector
// store and the vector databases behind it.
//
// # Overview
//
// A backend provides two things:
//
//   - an IndexClient, the control plane: list, create and bind indexes
//   - an Index, the data plane: upsert, update, delete, query and fetch
//     records inside one Namespace
//
// The store only ever talks to these interfaces, so swapping Qdrant for
// pgvector or the in-memory backend is a matter of passing a different
// Connector.
//
//	┌──────────────────────────────┐
//	│      vectorstore.Store       │
//	└──────────────┬───────────────┘
//	               │ vectordb.IndexClient / vectordb.Index
//	     ┌─────────┼──────────┐
//	     ▼         ▼          ▼
//	  qdrant    pgvector    memory
//
// # Namespaces
//
// Every data-plane call takes a Namespace. Backends guarantee that records
// written to NamespaceQA are invisible to NamespaceDocs and the other way
// round, even when both use the same ID.
//
// # Scores
//
// Match.Score is whatever the backend's engine reports. Indexes that know
// whether that is a distance or a similarity implement ScoreReporter, and
// the store uses it to pick the direction of its threshold comparison.
//
// # Filters
//
// FilterSet and its conditions express namespace and ID scoping for
// backends that store both as payload fields:
//
//	vectordb.NamespaceFilter("namespace", vectordb.NamespaceQA, "_id", []string{"a", "b"})
//
// # Testing
//
// MockIndexClient, MockIndex and MockScoreReporter are generated with
// go.uber.org/mock.
package vectordb
