package vectorstore

import (
	"context"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// VectorStore is the namespaced store contract. *Store implements it.
type VectorStore interface {
	AddQuestionAnswer(ctx context.Context, queries, codes, ids []string, metadatas []map[string]any) ([]string, error)
	AddDocs(ctx context.Context, docs, ids []string, metadatas []map[string]any) ([]string, error)

	UpdateQuestionAnswer(ctx context.Context, ids, queries, codes []string, metadatas []map[string]any) error
	UpdateDocs(ctx context.Context, ids, docs []string, metadatas []map[string]any) error

	DeleteQuestionAndAnswers(ctx context.Context, ids []string) (bool, error)
	DeleteDocs(ctx context.Context, ids []string) (bool, error)
	DeleteAllQuestionAnswers(ctx context.Context) (bool, error)
	DeleteAllDocs(ctx context.Context) (bool, error)

	GetRelevantQuestionAnswers(ctx context.Context, question string, k int) (*QueryResult, error)
	GetRelevantDocs(ctx context.Context, question string, k int) (*QueryResult, error)
	GetRelevantQuestionAnswersByID(ctx context.Context, ids []string) (*vectordb.FetchResponse, error)
	GetRelevantDocsByID(ctx context.Context, ids []string) (*vectordb.FetchResponse, error)
	GetRelevantQADocuments(ctx context.Context, question string, k int) ([]string, error)
	GetRelevantDocsDocuments(ctx context.Context, question string, k int) ([]string, error)

	Close() error
}

var _ VectorStore = (*Store)(nil)
