package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/kailas-cloud/rankfusion/internal/config"
	"github.com/kailas-cloud/rankfusion/internal/db/atlas"
	"github.com/kailas-cloud/rankfusion/internal/demo"
	"github.com/kailas-cloud/rankfusion/internal/domain"
	logpkg "github.com/kailas-cloud/rankfusion/internal/logger"
	"github.com/kailas-cloud/rankfusion/internal/metrics"
	"github.com/kailas-cloud/rankfusion/internal/progress"
	openaiEmb "github.com/kailas-cloud/rankfusion/internal/transport/openai"
	indexuc "github.com/kailas-cloud/rankfusion/internal/usecase/index"
	searchuc "github.com/kailas-cloud/rankfusion/internal/usecase/search"
	seeduc "github.com/kailas-cloud/rankfusion/internal/usecase/seed"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	var (
		queryOverride  string
		dropCollection bool
	)

	rootCmd := &cobra.Command{
		Use:   "rankfusion",
		Short: "Hybrid lexical+vector search demo against Atlas rank fusion",
		Long: `Rankfusion seeds a sample movie collection with plot embeddings,
ensures a text and a vector search index exist, and runs one hybrid
query through the server's rank-fusion aggregation stage.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(queryOverride, dropCollection)
		},
	}
	rootCmd.Flags().StringVar(&queryOverride, "query", "", "Override the configured search query")
	rootCmd.Flags().BoolVar(&dropCollection, "drop-collection", false, "Drop the demo collection on exit without prompting")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("rankfusion %s (%s)\n", version, commit)
		},
	})

	// Single failure boundary: every error class ends up here as one
	// printed diagnostic, never a raw stack trace.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal (%s): %v\n", domain.Classify(err), err)
		os.Exit(1)
	}
}

func run(queryOverride string, dropCollection bool) error {
	env := config.GetEnv()

	// Missing secrets fail here, before any network call.
	cfg, err := config.Load(env)
	if err != nil {
		return err
	}
	if queryOverride != "" {
		cfg.Search.Query = queryOverride
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting rank-fusion demo",
		zap.String("env", env),
		zap.String("database", cfg.Database.Name),
		zap.String("collection", cfg.Database.Collection),
		zap.String("query", cfg.Search.Query),
	)

	metrics.RegisterEmbeddingMetrics()
	if cfg.Metrics.Port > 0 {
		go serveMetrics(cfg.Metrics.Port, logger)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	ctx := context.Background()

	store, err := atlas.Open(ctx, cfg.Database.URI)
	if err != nil {
		return err
	}
	coll := store.Collection(cfg.Database.Name, cfg.Database.Collection)

	embedder := openaiEmb.NewEmbedder(&openaiEmb.Config{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Azure:      cfg.Embedding.Azure,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Provider:   providerName(cfg.Embedding.Azure),
		Logger:     logger,
	})

	seeder := seeduc.New(coll, embedder, logger)
	indexer := indexuc.New(coll, logger).
		WithPolling(secs(cfg.Index.PollIntervalSec), secs(cfg.Index.PollTimeoutSec)).
		WithProgress(progress.NewIndexSpinner(term.IsTerminal(int(os.Stderr.Fd()))))
	searcher := searchuc.New(coll, embedder, searchuc.Options{
		LexicalIndex:  cfg.Index.LexicalName,
		VectorIndex:   cfg.Index.VectorName,
		NumCandidates: cfg.Search.NumCandidates,
		PipelineLimit: cfg.Search.PipelineLimit,
		VectorWeight:  cfg.Search.VectorWeight,
		TextWeight:    cfg.Search.TextWeight,
		Limit:         cfg.Search.Limit,
	}, logger)

	driver := demo.New(store, seeder, indexer, searcher, demo.Params{
		LexicalIndex: cfg.Index.LexicalName,
		VectorIndex:  cfg.Index.VectorName,
		VectorDims:   cfg.Embedding.Dimensions,
		Query:        cfg.Search.Query,
	}, os.Stdin, os.Stdout, logger)

	runErr := driver.Run(ctx)
	if runErr != nil {
		logger.Error("demo run failed",
			zap.String("class", domain.Classify(runErr)),
			zap.Error(runErr),
		)
	}

	// The teardown prompt and the connection release run on every exit
	// path once a store handle exists.
	driver.Teardown(ctx, coll, dropCollection, interactive)
	if err := store.Close(ctx); err != nil {
		logger.Warn("close store", zap.Error(err))
	} else {
		logger.Info("store connection closed")
	}

	return runErr
}

func serveMetrics(port int, logger *zap.Logger) {
	addr := fmt.Sprintf(":%d", port)
	logger.Info("serving metrics", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, promhttp.Handler()); err != nil {
		logger.Warn("metrics listener stopped", zap.Error(err))
	}
}

func providerName(azure bool) string {
	if azure {
		return "azure-openai"
	}
	return "openai"
}

func secs(n int) time.Duration {
	return time.Duration(n) * time.Second
}
