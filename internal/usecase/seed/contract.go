package seed

import (
	"context"

	"github.com/kailas-cloud/rankfusion/internal/domain"
)

// Store defines the storage contract for seeding.
type Store interface {
	Name() string
	Exists(ctx context.Context) (bool, error)
	Count(ctx context.Context) (int64, error)
	Drop(ctx context.Context) error
	InsertMovies(ctx context.Context, movies []domain.Movie) error
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
