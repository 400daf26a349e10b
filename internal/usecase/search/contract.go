package search

import (
	"context"

	"github.com/kailas-cloud/rankfusion/internal/domain"
)

// Store executes fused retrieval requests.
type Store interface {
	RunHybrid(ctx context.Context, q domain.HybridQuery) ([]domain.ScoredResult, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
