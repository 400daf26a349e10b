package seed

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/rankfusion/internal/domain"
)

// mockStore implements the Store contract for tests.
type mockStore struct {
	exists    bool
	existsErr error
	count     int64
	countErr  error
	dropErr   error
	insertErr error

	dropCalls   int
	insertCalls int
	inserted    []domain.Movie
}

func (m *mockStore) Name() string { return "movies" }

func (m *mockStore) Exists(_ context.Context) (bool, error) {
	return m.exists, m.existsErr
}

func (m *mockStore) Count(_ context.Context) (int64, error) {
	return m.count, m.countErr
}

func (m *mockStore) Drop(_ context.Context) error {
	m.dropCalls++
	return m.dropErr
}

func (m *mockStore) InsertMovies(_ context.Context, movies []domain.Movie) error {
	m.insertCalls++
	m.inserted = movies
	return m.insertErr
}

// mockEmbedder returns a fixed vector and counts invocations.
type mockEmbedder struct {
	vec   []float32
	err   error
	calls int
	texts []string
}

func (m *mockEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	m.calls++
	m.texts = append(m.texts, text)
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return domain.EmbeddingResult{Embedding: m.vec, TotalTokens: 7}, nil
}

func newTestService(t *testing.T, store *mockStore, embed *mockEmbedder) *Service {
	t.Helper()
	return New(store, embed, zap.NewNop())
}
