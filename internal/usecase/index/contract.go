package index

import (
	"context"

	"github.com/kailas-cloud/rankfusion/internal/domain"
)

// Store defines the search-index contract.
type Store interface {
	ListSearchIndexes(ctx context.Context) ([]domain.IndexState, error)
	SearchIndexState(ctx context.Context, name string) (domain.IndexState, bool, error)
	CreateSearchIndex(ctx context.Context, name string, kind domain.IndexKind, dims int) error
}

// ProgressReporter shows build-wait progress to interactive users.
type ProgressReporter interface {
	Start(desc string)
	Tick()
	Finish()
}
