package vectorstore

import (
	"context"
	"fmt"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// AddQuestionAnswer stores question/answer pairs in the qa namespace. Each
// pair is embedded as FormatQA(query, code). ids and metadatas are optional;
// when given they must match the number of pairs. Generated IDs end in
// "-qa". The IDs used are returned in input order.
func (s *Store) AddQuestionAnswer(ctx context.Context, queries, codes, ids []string, metadatas []map[string]any) (_ []string, err error) {
	ctx, op := s.startOperation(ctx, "add_question_answer", vectordb.NamespaceQA)
	defer func() { op.finish(ctx, err, len(queries)) }()

	if err := checkPairs(queries, codes); err != nil {
		return nil, err
	}
	return s.add(ctx, vectordb.NamespaceQA, formatQAs(queries, codes), ids, metadatas, suffixQA)
}

// AddDocs stores raw documents in the docs namespace. ids and metadatas are
// optional; when given they must match len(docs). Generated IDs end in
// "-docs". The IDs used are returned in input order.
func (s *Store) AddDocs(ctx context.Context, docs, ids []string, metadatas []map[string]any) (_ []string, err error) {
	ctx, op := s.startOperation(ctx, "add_docs", vectordb.NamespaceDocs)
	defer func() { op.finish(ctx, err, len(docs)) }()

	return s.add(ctx, vectordb.NamespaceDocs, docs, ids, metadatas, suffixDocs)
}

// add embeds all texts in one call and writes them in one upsert.
func (s *Store) add(ctx context.Context, ns vectordb.Namespace, texts, ids []string, metadatas []map[string]any, suffix string) ([]string, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if ids != nil {
		if err := checkLen("ids", len(ids), len(texts)); err != nil {
			return nil, err
		}
		if err := checkIDs(ids); err != nil {
			return nil, err
		}
	}
	if metadatas != nil {
		if err := checkLen("metadatas", len(metadatas), len(texts)); err != nil {
			return nil, err
		}
	}
	if len(texts) == 0 {
		return []string{}, nil
	}

	meta, err := buildMetadata(texts, metadatas)
	if err != nil {
		return nil, err
	}

	if ids == nil {
		ids = generateIDs(len(texts), suffix)
	} else {
		ids = append([]string(nil), ids...)
	}

	vectors, err := s.embed(ctx, texts)
	if err != nil {
		return nil, err
	}

	records := make([]vectordb.Record, len(texts))
	for i := range texts {
		records[i] = vectordb.Record{ID: ids[i], Values: vectors[i], Metadata: meta[i]}
	}

	if err := s.index.Upsert(ctx, ns, records); err != nil {
		return nil, err
	}
	return ids, nil
}

// UpdateQuestionAnswer replaces the vector and metadata of existing qa
// records. All texts are embedded in one call; each record is then updated
// with its own call.
func (s *Store) UpdateQuestionAnswer(ctx context.Context, ids, queries, codes []string, metadatas []map[string]any) (err error) {
	ctx, op := s.startOperation(ctx, "update_question_answer", vectordb.NamespaceQA)
	defer func() { op.finish(ctx, err, len(ids)) }()

	if err := checkPairs(queries, codes); err != nil {
		return err
	}
	return s.update(ctx, vectordb.NamespaceQA, ids, formatQAs(queries, codes), metadatas)
}

// UpdateDocs replaces the vector and metadata of existing docs records.
func (s *Store) UpdateDocs(ctx context.Context, ids, docs []string, metadatas []map[string]any) (err error) {
	ctx, op := s.startOperation(ctx, "update_docs", vectordb.NamespaceDocs)
	defer func() { op.finish(ctx, err, len(ids)) }()

	return s.update(ctx, vectordb.NamespaceDocs, ids, docs, metadatas)
}

func (s *Store) update(ctx context.Context, ns vectordb.Namespace, ids, texts []string, metadatas []map[string]any) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := checkLen("ids", len(ids), len(texts)); err != nil {
		return err
	}
	if err := checkIDs(ids); err != nil {
		return err
	}
	if metadatas != nil {
		if err := checkLen("metadatas", len(metadatas), len(texts)); err != nil {
			return err
		}
	}
	if len(texts) == 0 {
		return nil
	}

	meta, err := buildMetadata(texts, metadatas)
	if err != nil {
		return err
	}

	vectors, err := s.embed(ctx, texts)
	if err != nil {
		return err
	}

	for i, id := range ids {
		if err := s.index.Update(ctx, ns, id, vectors[i], meta[i]); err != nil {
			return err
		}
	}
	return nil
}

// DeleteQuestionAndAnswers removes the given qa records. Unknown IDs are
// ignored. A nil or empty ids slice deletes nothing; use
// DeleteAllQuestionAnswers to clear the namespace.
func (s *Store) DeleteQuestionAndAnswers(ctx context.Context, ids []string) (bool, error) {
	return s.delete(ctx, "delete_question_and_answers", vectordb.NamespaceQA, ids)
}

// DeleteDocs removes the given docs records. Unknown IDs are ignored.
func (s *Store) DeleteDocs(ctx context.Context, ids []string) (bool, error) {
	return s.delete(ctx, "delete_docs", vectordb.NamespaceDocs, ids)
}

// DeleteAllQuestionAnswers removes every record of the qa namespace.
func (s *Store) DeleteAllQuestionAnswers(ctx context.Context) (bool, error) {
	return s.deleteAll(ctx, "delete_all_question_answers", vectordb.NamespaceQA)
}

// DeleteAllDocs removes every record of the docs namespace.
func (s *Store) DeleteAllDocs(ctx context.Context) (bool, error) {
	return s.deleteAll(ctx, "delete_all_docs", vectordb.NamespaceDocs)
}

func (s *Store) delete(ctx context.Context, name string, ns vectordb.Namespace, ids []string) (_ bool, err error) {
	ctx, op := s.startOperation(ctx, name, ns)
	defer func() { op.finish(ctx, err, len(ids)) }()

	if err := s.checkOpen(); err != nil {
		return false, err
	}
	if len(ids) == 0 {
		return true, nil
	}
	if err := s.index.Delete(ctx, ns, ids); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) deleteAll(ctx context.Context, name string, ns vectordb.Namespace) (_ bool, err error) {
	ctx, op := s.startOperation(ctx, name, ns)
	defer func() { op.finish(ctx, err, 0) }()

	if err := s.checkOpen(); err != nil {
		return false, err
	}
	if err := s.index.DeleteAll(ctx, ns); err != nil {
		return false, err
	}
	return true, nil
}

// embed calls the embedder once and checks that it returned one vector of
// the configured dimension per text. Errors from the embedder itself are
// returned unchanged.
func (s *Store) embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: got %d vectors for %d texts", ErrEmbedding, len(vectors), len(texts))
	}
	for i, v := range vectors {
		if len(v) != s.cfg.Dimension {
			return nil, fmt.Errorf("%w: vector %d has dimension %d, want %d", ErrEmbedding, i, len(v), s.cfg.Dimension)
		}
	}
	return vectors, nil
}

func checkPairs(queries, codes []string) error {
	if len(queries) != len(codes) {
		return fmt.Errorf("%w: queries and codes length doesn't match %d != %d", ErrValidation, len(queries), len(codes))
	}
	return nil
}

func checkLen(what string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s has %d items, want %d", ErrValidation, what, got, want)
	}
	return nil
}

func checkIDs(ids []string) error {
	for i, id := range ids {
		if id == "" {
			return fmt.Errorf("%w: ids[%d] is empty", ErrValidation, i)
		}
	}
	return nil
}
