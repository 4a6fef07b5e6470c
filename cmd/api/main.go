package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nileshd/newsguard/internal/api"
	"github.com/nileshd/newsguard/internal/classifier"
	"github.com/nileshd/newsguard/internal/collector"
	"github.com/nileshd/newsguard/internal/config"
	"github.com/nileshd/newsguard/internal/feeds"
	"github.com/nileshd/newsguard/internal/logger"
	"github.com/nileshd/newsguard/internal/processor"
	"github.com/nileshd/newsguard/internal/scheduler"
	"github.com/nileshd/newsguard/internal/storage"
	"github.com/nileshd/newsguard/internal/verify"
)

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

	trusted := mergeTrusted(classifier.DefaultTrustedSources(), feeds.TrustedNames(sources))
	oracle := classifier.NewOracle(cfg.OracleAPIURL, cfg.OracleAPIKey, cfg.OracleModel)
	if oracle == nil {
		logger.Info("credibility oracle not configured, heuristic tier only")
	}
	clf := classifier.New(trusted, oracle)

	store := storage.NewStore(cfg.SnapshotPath)
	if err := store.Load(); err != nil {
		logger.Warnf("seed snapshot from disk: %v", err)
	} else if snap := store.Current(); snap != nil {
		logger.Infof("seeded snapshot from disk: %d articles, generated %s", len(snap.Articles), snap.GeneratedAt.Format(time.RFC3339))
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
	sched.Start()

	verifier := verify.New(store, clf)

	var extractor verify.TextExtractor
	if e := verify.NewHTTPExtractor(cfg.OCRAPIURL); e != nil {
		extractor = e
	} else {
		logger.Info("text extractor not configured, /verify-ocr disabled")
	}

	r := gin.Default()
	apiServer := api.NewServer(store, clf, verifier, api.Options{
		Extractor:   extractor,
		SearchCache: storage.NewSearchCache(cfg.RedisAddr),
		Refresh:     sched.RunCycle,
	})
	apiServer.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("starting api server at %s ...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("server exit: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down ...")
	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
	logger.Info("server stopped")
}

// mergeTrusted unions the built-in trusted terms with the registry's
// trusted-tier display names.
func mergeTrusted(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, lst := range [][]string{base, extra} {
		for _, name := range lst {
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}
