package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arete-labs/reddit-harvester/internal/collector"
	"github.com/arete-labs/reddit-harvester/internal/config"
	"github.com/arete-labs/reddit-harvester/internal/domain"
	"github.com/arete-labs/reddit-harvester/internal/ingest"
	"github.com/arete-labs/reddit-harvester/internal/scraper"
	"github.com/arete-labs/reddit-harvester/internal/storage"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	// 1. Setup
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogFormat)
	runID := uuid.NewString()
	logger = logger.With("run_id", runID)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Load Inputs
	sources, err := ingest.LoadSources(cfg.Scrape.SourcesFile)
	if err != nil {
		logger.Error("Failed to load sources", "path", cfg.Scrape.SourcesFile, "error", err)
		os.Exit(1)
	}

	// 3. Initialize Client (Using Factory)
	client, err := collector.New(cfg)
	if err != nil {
		logger.Error("Failed to initialize collector", "error", err)
		os.Exit(1)
	}
	logger.Info("Collector initialized", "mode", cfg.Collector.Mode)

	// 4. Scrape
	opts := domain.SearchOptions{
		Query:        cfg.Scrape.Query,
		Sort:         cfg.Scrape.Sort,
		TimeFilter:   cfg.Scrape.TimeFilter,
		PostLimit:    cfg.Scrape.PostLimit,
		GetComments:  cfg.Scrape.GetComments,
		CommentLimit: cfg.Scrape.CommentLimit,
	}

	s := scraper.New(client)
	s.FailFast = cfg.Scrape.FailFast

	logger.Info("Starting scrape cycle", "sources", len(sources), "query", opts.Query)
	posts, scrapeErr := s.MultiScrape(ctx, sources, opts)
	if scrapeErr != nil && len(posts) == 0 {
		logger.Error("Scrape failed", "error", scrapeErr)
		os.Exit(1)
	}

	commentCount := 0
	for _, p := range posts {
		commentCount += len(p.Comments)
	}
	logger.Info("Scrape complete", "posts", len(posts), "comments", commentCount)

	// 5. Export. A fail-fast abort still exports the sources that succeeded.
	if err := storage.ExportRun(cfg.Output.Dir, runID, posts); err != nil {
		logger.Error("Export failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Data saved", "dir", cfg.Output.Dir)

	if scrapeErr != nil {
		logger.Error("Scrape aborted, partial results exported", "error", scrapeErr, "posts", len(posts))
		os.Exit(1)
	}
}

func newLogger(format string) *slog.Logger {
	if format == "text" {
		return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
