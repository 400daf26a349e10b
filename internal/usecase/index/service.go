package index

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/rankfusion/internal/domain"
)

const (
	defaultPollInterval = 5 * time.Second
	defaultPollTimeout  = 300 * time.Second
)

// Service ensures the required search indexes exist and are ready to serve
// queries. Index builds are asynchronous on the server and may take seconds
// to minutes; with no push notification exposed, readiness is observed by a
// bounded fixed-interval poll.
type Service struct {
	store    Store
	interval time.Duration
	timeout  time.Duration
	progress ProgressReporter
	logger   *zap.Logger

	// clock seams for tests
	now   func() time.Time
	sleep func(time.Duration)
}

// New creates an index service with default polling (5s interval, 300s budget).
func New(store Store, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		interval: defaultPollInterval,
		timeout:  defaultPollTimeout,
		logger:   logger,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// WithPolling overrides the poll interval and timeout budget.
func (s *Service) WithPolling(interval, timeout time.Duration) *Service {
	if interval > 0 {
		s.interval = interval
	}
	if timeout > 0 {
		s.timeout = timeout
	}
	return s
}

// WithProgress attaches a build-wait progress reporter.
func (s *Service) WithProgress(p ProgressReporter) *Service {
	s.progress = p
	return s
}

// EnsureIndexes makes sure the lexical and vector indexes exist and polls
// each to readiness. An already-listed name skips only the creation request:
// a prior run may have left it mid-build, so readiness is always verified.
func (s *Service) EnsureIndexes(ctx context.Context, lexicalName, vectorName string, vectorDims int) error {
	existing, err := s.store.ListSearchIndexes(ctx)
	if err != nil {
		return fmt.Errorf("list search indexes: %w", err)
	}
	present := make(map[string]bool, len(existing))
	for _, state := range existing {
		present[state.Name] = true
	}

	required := []struct {
		name string
		kind domain.IndexKind
	}{
		{lexicalName, domain.IndexLexical},
		{vectorName, domain.IndexVector},
	}

	for _, req := range required {
		if present[req.name] {
			s.logger.Info("search index already exists",
				zap.String("index", req.name),
				zap.String("kind", string(req.kind)),
			)
		} else {
			s.logger.Info("creating search index",
				zap.String("index", req.name),
				zap.String("kind", string(req.kind)),
			)
			if err := s.store.CreateSearchIndex(ctx, req.name, req.kind, vectorDims); err != nil {
				return fmt.Errorf("create search index %s: %w", req.name, err)
			}
		}
		if err := s.waitReady(ctx, req.name); err != nil {
			return err
		}
	}
	return nil
}

// waitReady polls the index status at a fixed interval until it reports
// ready or queryable, or the timeout budget elapses. Transient status-read
// failures are swallowed and retried; only the budget ends the wait.
func (s *Service) waitReady(ctx context.Context, name string) error {
	s.logger.Info("waiting for search index build",
		zap.String("index", name),
		zap.Duration("interval", s.interval),
		zap.Duration("timeout", s.timeout),
	)
	if s.progress != nil {
		s.progress.Start("index " + name)
		defer s.progress.Finish()
	}

	start := s.now()
	for {
		state, found, err := s.store.SearchIndexState(ctx, name)
		switch {
		case err != nil:
			s.logger.Debug("index status read failed, retrying",
				zap.String("index", name), zap.Error(err))
		case found && state.Ready():
			s.logger.Info("search index ready", zap.String("index", name))
			return nil
		default:
			s.logger.Debug("index still building",
				zap.String("index", name), zap.String("status", state.Status))
		}

		if s.now().Sub(start) >= s.timeout {
			return fmt.Errorf("index %s not ready after %s: %w", name, s.timeout, domain.ErrIndexTimeout)
		}
		if s.progress != nil {
			s.progress.Tick()
		}
		s.sleep(s.interval)
	}
}
