package demo

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/rankfusion/internal/domain"
)

type mockPinger struct {
	err   error
	calls int
}

func (m *mockPinger) Ping(_ context.Context) error {
	m.calls++
	return m.err
}

type mockSeeder struct {
	err   error
	calls int
}

func (m *mockSeeder) EnsureSeeded(_ context.Context) error {
	m.calls++
	return m.err
}

type mockIndexer struct {
	err     error
	calls   int
	lexical string
	vector  string
	dims    int
}

func (m *mockIndexer) EnsureIndexes(_ context.Context, lexicalName, vectorName string, vectorDims int) error {
	m.calls++
	m.lexical = lexicalName
	m.vector = vectorName
	m.dims = vectorDims
	return m.err
}

type mockSearcher struct {
	results []domain.ScoredResult
	err     error
	calls   int
	query   string
}

func (m *mockSearcher) Search(_ context.Context, queryText string) ([]domain.ScoredResult, error) {
	m.calls++
	m.query = queryText
	return m.results, m.err
}

type mockDropper struct {
	err   error
	calls int
}

func (m *mockDropper) Name() string { return "movies" }

func (m *mockDropper) Drop(_ context.Context) error {
	m.calls++
	return m.err
}

type harness struct {
	pinger   *mockPinger
	seeder   *mockSeeder
	indexer  *mockIndexer
	searcher *mockSearcher
	out      *bytes.Buffer
	driver   *Driver
}

func newHarness(t *testing.T, in io.Reader) *harness {
	t.Helper()
	if in == nil {
		in = strings.NewReader("")
	}
	h := &harness{
		pinger:   &mockPinger{},
		seeder:   &mockSeeder{},
		indexer:  &mockIndexer{},
		searcher: &mockSearcher{},
		out:      &bytes.Buffer{},
	}
	h.driver = New(h.pinger, h.seeder, h.indexer, h.searcher, Params{
		LexicalIndex: "movies_text_index",
		VectorIndex:  "movies_vector_index",
		VectorDims:   1536,
		Query:        "space galaxy adventure",
	}, in, h.out, zap.NewNop())
	return h
}
