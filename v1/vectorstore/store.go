package vectorstore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/vectorstore/v1/embedding"
	"github.com/Aleph-Alpha/vectorstore/v1/logger"
	"github.com/Aleph-Alpha/vectorstore/v1/observability"
	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// Store is a vector store with two namespaces, qa and docs, inside one
// index. All operations are synchronous and never run in parallel
// internally. A Store must be released with Close.
type Store struct {
	cfg       Config
	indexName string
	scoreKind vectordb.ScoreKind

	client   vectordb.IndexClient
	index    vectordb.Index
	embedder embedding.Embedder

	logger   logger.Logger
	observer observability.Observer
	tracer   trace.Tracer

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// Params defines dependencies needed to construct a Store.
//
// Connect is required unless Index is a ByHandle reference. A nil Index
// means ByName(Config.IndexName). Logger, Observer and Tracer are optional.
type Params struct {
	fx.In

	Config   *Config
	Connect  vectordb.Connector `optional:"true"`
	Index    IndexRef           `optional:"true"`
	Embedder embedding.Embedder

	Logger   logger.Logger          `optional:"true"`
	Observer observability.Observer `optional:"true"`
	Tracer   trace.Tracer           `optional:"true"`
}

// New opens the index client, creates the index if it does not exist yet and
// binds to it. On any failure every resource acquired so far is released and
// the returned error wraps ErrConstruction.
//
// Example:
//
//	store, err := vectorstore.New(ctx, vectorstore.Params{
//	    Config:   vectorstore.DefaultConfig().WithDimension(768),
//	    Connect:  memory.NewClient().Connector(),
//	    Embedder: embedder,
//	})
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
func New(ctx context.Context, p Params) (s *Store, err error) {
	cfg := p.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}
	if p.Embedder == nil {
		return nil, fmt.Errorf("%w: embedder is required", ErrConstruction)
	}

	ref := p.Index
	if ref == nil {
		ref = ByName(cfg.IndexName)
	}

	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}
	tr := p.Tracer
	if tr == nil {
		tr = noop.NewTracerProvider().Tracer("")
	}

	log.InfoWithContext(ctx, "Initializing vector store", nil, map[string]interface{}{
		"dimension": cfg.Dimension,
		"metric":    string(cfg.Metric),
	})

	store := &Store{
		cfg:      *cfg,
		embedder: p.Embedder,
		logger:   log,
		observer: p.Observer,
		tracer:   tr,
	}

	defer func() {
		if err != nil {
			if cerr := store.Close(); cerr != nil {
				log.ErrorWithContext(ctx, "Failed to release resources after construction error", cerr, nil)
			}
			err = fmt.Errorf("%w: %w", ErrConstruction, err)
			s = nil
		}
	}()

	switch r := ref.(type) {
	case byHandle:
		if r.index == nil {
			return nil, errors.New("index handle is nil")
		}
		if p.Connect != nil {
			if store.client, err = p.Connect(ctx); err != nil {
				return nil, fmt.Errorf("connect: %w", err)
			}
		}
		store.index = r.index
		store.indexName = "<handle>"

	case byName:
		if r.name == "" {
			return nil, errors.New("index name is required")
		}
		if p.Connect == nil {
			return nil, errors.New("connector is required to bind an index by name")
		}
		if store.client, err = p.Connect(ctx); err != nil {
			return nil, fmt.Errorf("connect: %w", err)
		}
		if store.index, err = bindOrCreate(ctx, store.client, r.name, cfg); err != nil {
			return nil, err
		}
		store.indexName = r.name

	default:
		return nil, fmt.Errorf("unsupported index reference %T", ref)
	}

	store.scoreKind = resolveScoreKind(cfg.ScoreKind, store.index)
	if err = checkThreshold(store.scoreKind, cfg); err != nil {
		return nil, err
	}

	log.InfoWithContext(ctx, "Successfully initialized index", nil, map[string]interface{}{
		"index":      store.indexName,
		"score_kind": string(store.scoreKind),
	})
	return store, nil
}

// bindOrCreate binds to name, creating the index first when the client
// does not list it.
func bindOrCreate(ctx context.Context, client vectordb.IndexClient, name string, cfg *Config) (vectordb.Index, error) {
	names, err := client.ListIndexNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list indexes: %w", err)
	}

	if !slices.Contains(names, name) {
		spec := vectordb.IndexSpec{
			Name:      name,
			Dimension: cfg.Dimension,
			Metric:    cfg.Metric,
			Placement: cfg.Placement,
		}
		if err := client.CreateIndex(ctx, spec); err != nil {
			return nil, fmt.Errorf("create index %q: %w", name, err)
		}
	}

	idx, err := client.BindIndex(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("bind index %q: %w", name, err)
	}
	return idx, nil
}

// resolveScoreKind picks the threshold direction: configured value first,
// then the index's own report, then distance.
func resolveScoreKind(configured vectordb.ScoreKind, idx vectordb.Index) vectordb.ScoreKind {
	if configured != "" {
		return configured
	}
	if r, ok := idx.(vectordb.ScoreReporter); ok {
		if k := r.ScoreKind(); k != "" {
			return k
		}
	}
	return vectordb.ScoreDistance
}

// checkThreshold rejects thresholds no score of the metric can pass.
// Cosine similarities never exceed 1.
func checkThreshold(kind vectordb.ScoreKind, cfg *Config) error {
	if kind == vectordb.ScoreSimilarity && cfg.Metric == vectordb.MetricCosine && cfg.SimilarityThreshold >= 1 {
		return fmt.Errorf("%w: similarity threshold %g rejects every cosine similarity score, use a value below 1",
			ErrValidation, cfg.SimilarityThreshold)
	}
	return nil
}

// ScoreKind returns the direction used for threshold filtering.
func (s *Store) ScoreKind() vectordb.ScoreKind {
	return s.scoreKind
}

// Close marks the store closed and closes the index client if the store
// opened one. Operations on a closed store fail with ErrClosed. It is safe on a nil Store and safe to call more than once;
// later calls return the result of the first.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		if s.client != nil {
			s.closeErr = s.client.Close()
			s.client = nil
		}
		s.logger.Debug("Vector store closed", s.closeErr, map[string]interface{}{"index": s.indexName})
	})
	return s.closeErr
}

func (s *Store) checkOpen() error {
	if s == nil || s.closed.Load() {
		return ErrClosed
	}
	return nil
}
