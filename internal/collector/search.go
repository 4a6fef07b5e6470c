package collector

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"
)

const (
	topicSearchBaseURL    = "https://news.google.com/rss/search"
	topicSearchMaxEntries = 50
)

// TopicSearchFetcher runs an ad hoc query against the Google News search
// feed. It is built per request and is never part of the periodic registry;
// its results are classified the same way but not merged into the snapshot.
type TopicSearchFetcher struct {
	query  string
	parser *gofeed.Parser
	images *ImageResolver
}

func NewTopicSearchFetcher(query string, images *ImageResolver) *TopicSearchFetcher {
	if images == nil {
		images = NewImageResolver()
	}
	return &TopicSearchFetcher{
		query:  query,
		parser: gofeed.NewParser(),
		images: images,
	}
}

func (t *TopicSearchFetcher) Name() string {
	return "topic_search"
}

func (t *TopicSearchFetcher) Fetch(ctx context.Context) ([]Article, error) {
	feedURL := fmt.Sprintf("%s?q=%s&hl=en-IN&gl=IN&ceid=IN:en", topicSearchBaseURL, url.QueryEscape(t.query))

	parsed, err := t.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("topic search %q: %w", t.query, err)
	}

	items := parsed.Items
	if len(items) > topicSearchMaxEntries {
		items = items[:topicSearchMaxEntries]
	}

	articles := make([]Article, 0, len(items))
	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		art := NormalizeEntry(item, googleNewsSource(item.Title))
		art.ImageURL = t.images.Resolve(ctx, item, art.Link)
		articles = append(articles, art)
	}
	return articles, nil
}

// googleNewsSource extracts the outlet name Google News appends to the
// headline ("Headline - Outlet"); absent that, the aggregator itself is
// reported as the source.
func googleNewsSource(title string) string {
	if idx := strings.LastIndex(title, " - "); idx > 0 {
		if name := strings.TrimSpace(title[idx+3:]); name != "" {
			return name
		}
	}
	return "Google News"
}
