package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/rankfusion/internal/domain"
)

// Options fixes the query shape: index names, candidate pool, per-pipeline
// limit, subquery weights, and the final result cap.
type Options struct {
	LexicalIndex  string
	VectorIndex   string
	NumCandidates int
	PipelineLimit int
	VectorWeight  float64
	TextWeight    float64
	Limit         int
}

// Service runs hybrid lexical+vector queries through the store's fusion stage.
type Service struct {
	store  Store
	embed  Embedder
	opts   Options
	logger *zap.Logger
}

// New creates a hybrid search service.
func New(store Store, embed Embedder, opts Options, logger *zap.Logger) *Service {
	return &Service{store: store, embed: embed, opts: opts, logger: logger}
}

// Search embeds the query text and executes one fused retrieval request.
// The store returns documents already ordered by fused score descending;
// the result is truncated to the configured limit, never re-sorted.
func (s *Service) Search(ctx context.Context, queryText string) ([]domain.ScoredResult, error) {
	embResult, err := s.embed.Embed(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w", err)
	}

	q := domain.HybridQuery{
		Text:          queryText,
		Vector:        embResult.Embedding,
		LexicalIndex:  s.opts.LexicalIndex,
		VectorIndex:   s.opts.VectorIndex,
		NumCandidates: s.opts.NumCandidates,
		PipelineLimit: s.opts.PipelineLimit,
		VectorWeight:  s.opts.VectorWeight,
		TextWeight:    s.opts.TextWeight,
		Limit:         s.opts.Limit,
	}

	results, err := s.store.RunHybrid(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("hybrid search: %w", err)
	}

	s.logger.Info("hybrid search complete",
		zap.String("query", queryText),
		zap.Int("results", len(results)),
	)

	if len(results) > s.opts.Limit {
		results = results[:s.opts.Limit]
	}
	return results, nil
}
