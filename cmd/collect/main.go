package main

import (
	"os"

	"github.com/nileshd/newsguard/internal/classifier"
	"github.com/nileshd/newsguard/internal/collector"
	"github.com/nileshd/newsguard/internal/config"
	"github.com/nileshd/newsguard/internal/feeds"
	"github.com/nileshd/newsguard/internal/logger"
	"github.com/nileshd/newsguard/internal/processor"
	"github.com/nileshd/newsguard/internal/scheduler"
	"github.com/nileshd/newsguard/internal/storage"
)

// One-shot collection entry point: runs a single refresh cycle and exits.
// Suitable for manual triggers and external cron.
func main() {
	cfg := config.Load()

	if err := logger.Init(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		logger.Errorf("init logger: %v", err)
		os.Exit(1)
	}
	defer logger.Sync()

	sources, err := feeds.Load(cfg.FeedsFile)
	if err != nil {
		logger.Errorf("load feed registry: %v", err)
		os.Exit(1)
	}

	oracle := classifier.NewOracle(cfg.OracleAPIURL, cfg.OracleAPIKey, cfg.OracleModel)
	trusted := append(classifier.DefaultTrustedSources(), feeds.TrustedNames(sources)...)
	clf := classifier.New(trusted, oracle)

	store := storage.NewStore(cfg.SnapshotPath)
	if err := store.Load(); err != nil {
		logger.Warnf("seed snapshot from disk: %v", err)
	}

	var archive *storage.Archive
	if cfg.PostgresDSN != "" {
		archive, err = storage.NewArchive(cfg.PostgresDSN)
		if err != nil {
			logger.Warnf("article archive disabled: %v", err)
			archive = nil
		}
	}

	images := collector.NewImageResolver()
	fetchers := make([]collector.Fetcher, 0, len(sources))
	for _, src := range sources {
		fetchers = append(fetchers, collector.NewFeedFetcher(src, cfg.MaxPerSource, images))
	}

	sched, err := scheduler.New(cfg.CronSpec, fetchers, clf, processor.NewRanker(0), store, archive, cfg.SourceTimeout)
	if err != nil {
		logger.Errorf("init scheduler: %v", err)
		os.Exit(1)
	}

	sched.RunCycle()
}
