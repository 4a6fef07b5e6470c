package collector

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"

	"github.com/nileshd/newsguard/internal/feeds"
)

// Fetcher abstracts one source of raw articles.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]Article, error)
}

// FeedFetcher pulls one syndication feed and normalizes its entries.
type FeedFetcher struct {
	source     feeds.Source
	parser     *gofeed.Parser
	images     *ImageResolver
	maxEntries int
}

// NewFeedFetcher builds a fetcher for source. maxEntries <= 0 means the
// default per-source cap.
func NewFeedFetcher(source feeds.Source, maxEntries int, images *ImageResolver) *FeedFetcher {
	if maxEntries <= 0 {
		maxEntries = 25
	}
	if images == nil {
		images = NewImageResolver()
	}
	return &FeedFetcher{
		source:     source,
		parser:     gofeed.NewParser(),
		images:     images,
		maxEntries: maxEntries,
	}
}

func (f *FeedFetcher) Name() string {
	return f.source.Name
}

// Fetch downloads and parses the feed. The context bounds the whole call,
// including image resolution for each entry.
func (f *FeedFetcher) Fetch(ctx context.Context) ([]Article, error) {
	parsed, err := f.parser.ParseURLWithContext(f.source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", f.source.URL, err)
	}

	sourceName := parsed.Title
	if sourceName == "" {
		sourceName = f.source.Name
	}
	if sourceName == "" {
		sourceName = "Unknown Source"
	}

	items := parsed.Items
	if len(items) > f.maxEntries {
		items = items[:f.maxEntries]
	}

	articles := make([]Article, 0, len(items))
	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		art := NormalizeEntry(item, sourceName)
		art.ImageURL = f.images.Resolve(ctx, item, art.Link)
		articles = append(articles, art)
	}
	return articles, nil
}
