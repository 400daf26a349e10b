// Package demo sequences the whole run: liveness check, seeding, index
// readiness, one hybrid query, and rendering. Everything downstream of the
// store handle funnels through a single failure boundary in the caller.
package demo

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/kailas-cloud/rankfusion/internal/domain"
)

// Pinger checks store liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Seeder populates the sample dataset.
type Seeder interface {
	EnsureSeeded(ctx context.Context) error
}

// Indexer ensures search indexes exist and are ready.
type Indexer interface {
	EnsureIndexes(ctx context.Context, lexicalName, vectorName string, vectorDims int) error
}

// Searcher runs one hybrid query.
type Searcher interface {
	Search(ctx context.Context, queryText string) ([]domain.ScoredResult, error)
}

// Dropper drops the demo collection at teardown.
type Dropper interface {
	Name() string
	Drop(ctx context.Context) error
}

// Params fixes the run: index names, vector dimensionality, and the query.
type Params struct {
	LexicalIndex string
	VectorIndex  string
	VectorDims   int
	Query        string
}

// Driver wires the demo phases together.
type Driver struct {
	store    Pinger
	seeder   Seeder
	indexer  Indexer
	searcher Searcher
	params   Params

	in     io.Reader
	out    io.Writer
	logger *zap.Logger
}

// New creates a demo driver. in and out are the interactive streams
// (stdin/stdout in production, buffers in tests).
func New(store Pinger, seeder Seeder, indexer Indexer, searcher Searcher,
	params Params, in io.Reader, out io.Writer, logger *zap.Logger,
) *Driver {
	return &Driver{
		store:    store,
		seeder:   seeder,
		indexer:  indexer,
		searcher: searcher,
		params:   params,
		in:       in,
		out:      out,
		logger:   logger,
	}
}

// Run executes the demo sequence and renders the fused ranking.
func (d *Driver) Run(ctx context.Context) error {
	if err := d.store.Ping(ctx); err != nil {
		return err
	}
	d.logger.Info("store connection verified")

	if err := d.seeder.EnsureSeeded(ctx); err != nil {
		return err
	}

	if err := d.indexer.EnsureIndexes(ctx, d.params.LexicalIndex, d.params.VectorIndex, d.params.VectorDims); err != nil {
		return err
	}

	d.logger.Info("running hybrid search", zap.String("query", d.params.Query))
	results, err := d.searcher.Search(ctx, d.params.Query)
	if err != nil {
		return err
	}

	d.render(results)
	return nil
}

// render prints the fused ranking in server order with 4-decimal scores.
func (d *Driver) render(results []domain.ScoredResult) {
	fmt.Fprintf(d.out, "\nFused results for %q:\n", d.params.Query)
	if len(results) == 0 {
		fmt.Fprintln(d.out, "  (no results)")
		return
	}
	for _, r := range results {
		fmt.Fprintf(d.out, "  %.4f  %s\n          %s\n", r.Score, r.Title, r.Plot)
	}
}
