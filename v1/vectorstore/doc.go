// Package vectorstore stores and retrieves texts by embedding similarity
// inside one vector index split into two namespaces: "qa" for
// question/answer pairs and "docs" for free-form documents.
//
// # Construction
//
// New binds a Store to an index through an IndexRef:
//
//   - ByName(name): the Connector opens a vectordb.IndexClient, the index is
//     created with Config.Dimension, Config.Metric and Config.Placement when
//     the client does not list it, then it is bound.
//   - ByHandle(idx): the store uses idx directly.
//
// Any failure releases what was acquired and returns an error wrapping
// ErrConstruction. Callers must Close the store; Close is safe on a nil
// store and safe to repeat.
//
// # Writing
//
// AddQuestionAnswer and AddDocs embed all texts with one Embedder call and
// write them with one upsert. QA pairs are embedded as FormatQA(q, a):
//
//	Q: <query>
//	A: <code>
//
// The embedded text is also stored under the metadata key TextKey ("text"),
// overriding any caller value. Caller metadata maps are copied, never
// mutated. Missing IDs are generated as a random UUID followed by "-qa" or
// "-docs".
//
// UpdateQuestionAnswer and UpdateDocs embed in one call and update each
// record with its own call. DeleteQuestionAndAnswers and DeleteDocs ignore
// unknown IDs; DeleteAllQuestionAnswers and DeleteAllDocs clear a namespace.
//
// # Reading
//
//	res, err := store.GetRelevantDocs(ctx, "how do I rotate keys?", 0)
//	// res.Documents[0], res.Distances[0], res.Metadata[0], res.IDs[0]
//
// k == 0 means Config.MaxSamples. Matches are kept when their score is on
// the accepting side of Config.SimilarityThreshold: below it for distance
// scores, above it for similarity scores. The direction comes from
// Config.ScoreKind, else from the index (vectordb.ScoreReporter), else
// distance.
//
// GetRelevantQuestionAnswersByID and GetRelevantDocsByID return the index's
// fetch response unchanged.
//
// # Errors
//
// Input problems wrap ErrValidation and are reported before any remote
// call. Errors from the embedder and the index are returned as they are;
// the store never retries.
//
// # Observability
//
// Each operation runs in an OpenTelemetry span named "vectorstore.<op>",
// is reported to the optional observability.Observer and logged at debug
// level (warn on failure).
package vectorstore
