package search

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/rankfusion/internal/domain"
)

// mockStore implements the Store contract and records the last query.
type mockStore struct {
	results []domain.ScoredResult
	err     error
	calls   int
	lastQ   domain.HybridQuery
}

func (m *mockStore) RunHybrid(_ context.Context, q domain.HybridQuery) ([]domain.ScoredResult, error) {
	m.calls++
	m.lastQ = q
	return m.results, m.err
}

type mockEmbedder struct {
	vec   []float32
	err   error
	calls int
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	m.calls++
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return domain.EmbeddingResult{Embedding: m.vec}, nil
}

func testOptions() Options {
	return Options{
		LexicalIndex:  "movies_text_index",
		VectorIndex:   "movies_vector_index",
		NumCandidates: 100,
		PipelineLimit: 10,
		VectorWeight:  0.7,
		TextWeight:    0.3,
		Limit:         5,
	}
}

func newTestService(t *testing.T, store *mockStore, embed *mockEmbedder) *Service {
	t.Helper()
	return New(store, embed, testOptions(), zap.NewNop())
}
