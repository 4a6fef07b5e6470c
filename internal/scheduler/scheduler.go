package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nileshd/newsguard/internal/classifier"
	"github.com/nileshd/newsguard/internal/collector"
	"github.com/nileshd/newsguard/internal/logger"
	"github.com/nileshd/newsguard/internal/processor"
	"github.com/nileshd/newsguard/internal/storage"
)

const defaultSourceTimeout = 10 * time.Second

// Scheduler drives refresh cycles: a cron timer (plus an explicit trigger)
// fans out one bounded fetch task per source, classifies what came back and
// publishes the ranked result as a new snapshot. A failed or slow source is
// skipped for the cycle, never fatal to it.
type Scheduler struct {
	cron          *cron.Cron
	fetchers      []collector.Fetcher
	clf           *classifier.Classifier
	ranker        *processor.Ranker
	store         *storage.Store
	archive       *storage.Archive
	sourceTimeout time.Duration

	baseCtx context.Context
	cancel  context.CancelFunc
	running atomic.Bool
}

// New wires a Scheduler on the given cron spec. archive may be nil.
func New(spec string, fetchers []collector.Fetcher, clf *classifier.Classifier, ranker *processor.Ranker, store *storage.Store, archive *storage.Archive, sourceTimeout time.Duration) (*Scheduler, error) {
	if sourceTimeout <= 0 {
		sourceTimeout = defaultSourceTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:          cron.New(),
		fetchers:      fetchers,
		clf:           clf,
		ranker:        ranker,
		store:         store,
		archive:       archive,
		sourceTimeout: sourceTimeout,
		baseCtx:       ctx,
		cancel:        cancel,
	}

	if _, err := s.cron.AddFunc(spec, s.runCycle); err != nil {
		cancel()
		return nil, err
	}
	return s, nil
}

// Start begins periodic collection. The first cycle is delayed a little so
// it does not compete with the first page loads after startup.
func (s *Scheduler) Start() {
	s.cron.Start()

	const startupDelay = 15 * time.Second
	time.AfterFunc(startupDelay, func() {
		go s.runCycle()
	})
}

// Stop cancels the timer and abandons in-flight fetches. It does not wait
// for a running cycle to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.cron.Stop()
}

// RunCycle triggers one synchronous refresh (used by the manual trigger).
func (s *Scheduler) RunCycle() {
	s.runCycle()
}

func (s *Scheduler) runCycle() {
	if !s.running.CompareAndSwap(false, true) {
		logger.Warn("refresh cycle already in progress, skipping")
		return
	}
	defer s.running.Store(false)

	start := time.Now()
	logger.Infof("refresh cycle starting, sources=%d", len(s.fetchers))

	results := make(chan []collector.Article, len(s.fetchers))

	var wg sync.WaitGroup
	for _, f := range s.fetchers {
		fetcher := f
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(s.baseCtx, s.sourceTimeout)
			defer cancel()

			name := fetcher.Name()
			articles, err := fetcher.Fetch(ctx)
			if err != nil {
				logger.Warnf("fetch %s failed: %v", name, err)
				return
			}
			if len(articles) == 0 {
				logger.Infof("fetch %s got 0 entries", name)
				return
			}

			for i := range articles {
				a := &articles[i]
				a.SetAssessment(s.clf.ClassifyArticle(ctx, a.Source, a.Title, a.Summary))
			}
			results <- articles
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var batch []collector.Article
	for articles := range results {
		batch = append(batch, articles...)
	}

	if s.baseCtx.Err() != nil {
		logger.Info("refresh cycle abandoned, shutting down")
		return
	}

	ranked := s.ranker.Rank(batch)

	if err := s.store.Publish(ranked); err != nil {
		if errors.Is(err, storage.ErrEmptyBatch) {
			logger.Warn("refresh cycle produced no articles, keeping previous snapshot")
		} else {
			logger.Errorf("publish snapshot: %v", err)
		}
		return
	}

	if err := s.archive.SaveBatch(ranked); err != nil {
		logger.Errorf("archive batch: %v", err)
	}

	logger.Infof("refresh cycle done, articles=%d took=%s", len(ranked), time.Since(start).Round(time.Millisecond))
}
