package vectorstore

import (
	"context"
	"fmt"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// QueryResult holds the accepted matches of one query as four aligned
// columns. Each column has exactly one batch element; the inner slices keep
// the index's ranking order.
type QueryResult struct {
	Documents [][]string         `json:"documents"`
	Distances [][]float32        `json:"distances"`
	Metadata  [][]map[string]any `json:"metadata"`
	IDs       [][]string         `json:"ids"`
}

// GetRelevantQuestionAnswers returns the qa records closest to question,
// at most k (MaxSamples when k is 0), filtered by the similarity threshold.
func (s *Store) GetRelevantQuestionAnswers(ctx context.Context, question string, k int) (*QueryResult, error) {
	return s.query(ctx, "get_relevant_question_answers", vectordb.NamespaceQA, question, k)
}

// GetRelevantDocs returns the docs records closest to question.
func (s *Store) GetRelevantDocs(ctx context.Context, question string, k int) (*QueryResult, error) {
	return s.query(ctx, "get_relevant_docs", vectordb.NamespaceDocs, question, k)
}

// GetRelevantQADocuments returns only the text of the matches of
// GetRelevantQuestionAnswers.
func (s *Store) GetRelevantQADocuments(ctx context.Context, question string, k int) ([]string, error) {
	res, err := s.GetRelevantQuestionAnswers(ctx, question, k)
	if err != nil {
		return nil, err
	}
	return res.Documents[0], nil
}

// GetRelevantDocsDocuments returns only the text of the matches of
// GetRelevantDocs.
func (s *Store) GetRelevantDocsDocuments(ctx context.Context, question string, k int) ([]string, error) {
	res, err := s.GetRelevantDocs(ctx, question, k)
	if err != nil {
		return nil, err
	}
	return res.Documents[0], nil
}

// GetRelevantQuestionAnswersByID fetches qa records by ID as the index
// returns them.
func (s *Store) GetRelevantQuestionAnswersByID(ctx context.Context, ids []string) (*vectordb.FetchResponse, error) {
	return s.fetch(ctx, "get_relevant_question_answers_by_id", vectordb.NamespaceQA, ids)
}

// GetRelevantDocsByID fetches docs records by ID as the index returns them.
func (s *Store) GetRelevantDocsByID(ctx context.Context, ids []string) (*vectordb.FetchResponse, error) {
	return s.fetch(ctx, "get_relevant_docs_by_id", vectordb.NamespaceDocs, ids)
}

func (s *Store) query(ctx context.Context, name string, ns vectordb.Namespace, question string, k int) (res *QueryResult, err error) {
	ctx, op := s.startOperation(ctx, name, ns)
	defer func() {
		size := 0
		if res != nil {
			size = len(res.IDs[0])
		}
		op.finish(ctx, err, size)
	}()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: k must not be negative, got %d", ErrValidation, k)
	}
	if k == 0 {
		k = s.cfg.MaxSamples
	}

	vectors, err := s.embed(ctx, []string{question})
	if err != nil {
		return nil, err
	}

	resp, err := s.index.Query(ctx, vectordb.QueryRequest{
		Namespace:       ns,
		Vector:          vectors[0],
		TopK:            k,
		IncludeMetadata: true,
		IncludeValues:   true,
	})
	if err != nil {
		return nil, err
	}

	return s.filterMatches(resp), nil
}

// filterMatches keeps matches on the accepting side of the threshold and
// reshapes them into columns.
func (s *Store) filterMatches(resp *vectordb.QueryResponse) *QueryResult {
	docs := []string{}
	dists := []float32{}
	metas := []map[string]any{}
	ids := []string{}

	if resp != nil {
		for _, m := range resp.Matches {
			if !s.accept(m.Score) {
				continue
			}
			text, _ := m.Metadata[TextKey].(string)
			docs = append(docs, text)
			dists = append(dists, m.Score)
			metas = append(metas, m.Metadata)
			ids = append(ids, m.ID)
		}
	}

	return &QueryResult{
		Documents: [][]string{docs},
		Distances: [][]float32{dists},
		Metadata:  [][]map[string]any{metas},
		IDs:       [][]string{ids},
	}
}

func (s *Store) accept(score float32) bool {
	if s.scoreKind == vectordb.ScoreSimilarity {
		return score > s.cfg.SimilarityThreshold
	}
	return score < s.cfg.SimilarityThreshold
}

func (s *Store) fetch(ctx context.Context, name string, ns vectordb.Namespace, ids []string) (res *vectordb.FetchResponse, err error) {
	ctx, op := s.startOperation(ctx, name, ns)
	defer func() {
		size := 0
		if res != nil {
			size = len(res.Records)
		}
		op.finish(ctx, err, size)
	}()

	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	return s.index.Fetch(ctx, ns, ids)
}
