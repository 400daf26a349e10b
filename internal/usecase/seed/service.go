package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Service populates the demo collection with the sample dataset.
type Service struct {
	store  Store
	embed  Embedder
	logger *zap.Logger
}

// New creates a seeding service.
func New(store Store, embed Embedder, logger *zap.Logger) *Service {
	return &Service{store: store, embed: embed, logger: logger}
}

// EnsureSeeded populates the collection unless it already holds documents.
// The existence check and the insert are not atomic against concurrent
// runs; a single writer is assumed.
func (s *Service) EnsureSeeded(ctx context.Context) error {
	exists, err := s.store.Exists(ctx)
	if err != nil {
		return fmt.Errorf("check collection: %w", err)
	}
	if exists {
		n, err := s.store.Count(ctx)
		if err != nil {
			return fmt.Errorf("count documents: %w", err)
		}
		if n > 0 {
			s.logger.Info("collection already populated, skipping seed",
				zap.String("collection", s.store.Name()),
				zap.Int64("documents", n),
			)
			return nil
		}
	}

	s.logger.Info("seeding sample dataset", zap.String("collection", s.store.Name()))

	// A prior run may have left an empty or half-written collection behind.
	if err := s.store.Drop(ctx); err != nil {
		return fmt.Errorf("drop partial collection: %w", err)
	}

	movies := SampleMovies()
	for i := range movies {
		result, err := s.embed.Embed(ctx, movies[i].Plot)
		if err != nil {
			return fmt.Errorf("embed plot of %q: %w", movies[i].Title, err)
		}
		movies[i].PlotEmbedding = result.Embedding
	}

	if err := s.store.InsertMovies(ctx, movies); err != nil {
		return fmt.Errorf("insert sample movies: %w", err)
	}

	s.logger.Info("sample dataset seeded",
		zap.String("collection", s.store.Name()),
		zap.Int("documents", len(movies)),
	)
	return nil
}
