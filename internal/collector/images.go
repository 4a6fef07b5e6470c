package collector

import (
	"context"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/mmcdole/gofeed"

	"github.com/nileshd/newsguard/internal/logger"
)

const (
	imageFetchTimeout = 5 * time.Second
	imageUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Known analytics pixels, stock logos and syndication placeholders that
// must never be used as an article illustration.
var defaultBadImagePatterns = []string{
	"google_news_logo",
	"googleusercontent.com",
	"gstatic.com",
	"placeholder",
	"pixel.gif",
	"feedburner",
}

// ImageResolver attaches an illustrative image URL to an article through a
// fallback chain: feed-embedded media first, then Open Graph, Twitter-card
// and finally the first inline image scraped from the article page. Every
// failure along the chain is swallowed; the worst outcome is no image.
type ImageResolver struct {
	timeout     time.Duration
	badPatterns []string
}

func NewImageResolver() *ImageResolver {
	return &ImageResolver{
		timeout:     imageFetchTimeout,
		badPatterns: defaultBadImagePatterns,
	}
}

// Resolve returns the first acceptable image URL, or "".
func (r *ImageResolver) Resolve(ctx context.Context, item *gofeed.Item, pageURL string) string {
	if u := feedImage(item); u != "" && !r.isBad(u) {
		return u
	}
	if pageURL == "" || ctx.Err() != nil {
		return ""
	}
	return r.scrapePage(pageURL)
}

// feedImage pulls the richest, cheapest candidate straight from the entry:
// the item image or the media:content / media:thumbnail extensions.
func feedImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}
	for _, key := range []string{"content", "thumbnail"} {
		for _, ext := range media[key] {
			if u := ext.Attrs["url"]; u != "" {
				return u
			}
		}
	}
	return ""
}

// scrapePage fetches the article page once and collects the meta-tag and
// inline-image candidates, then picks the first acceptable one in priority
// order. Fetch errors leave the article without an image.
func (r *ImageResolver) scrapePage(pageURL string) string {
	c := colly.NewCollector(colly.UserAgent(imageUserAgent))
	c.SetRequestTimeout(r.timeout)

	var ogImage, twitterImage, firstImg string

	c.OnHTML(`meta[property="og:image"]`, func(e *colly.HTMLElement) {
		if ogImage == "" {
			ogImage = strings.TrimSpace(e.Attr("content"))
		}
	})
	c.OnHTML(`meta[name="twitter:image"]`, func(e *colly.HTMLElement) {
		if twitterImage == "" {
			twitterImage = strings.TrimSpace(e.Attr("content"))
		}
	})
	c.OnHTML("img", func(e *colly.HTMLElement) {
		if firstImg == "" {
			firstImg = strings.TrimSpace(e.Attr("src"))
		}
	})

	if err := c.Visit(pageURL); err != nil {
		logger.Debugf("image scrape %s: %v", pageURL, err)
		return ""
	}

	for _, candidate := range []string{ogImage, twitterImage, firstImg} {
		if candidate != "" && !r.isBad(candidate) {
			return candidate
		}
	}
	return ""
}

func (r *ImageResolver) isBad(imageURL string) bool {
	for _, p := range r.badPatterns {
		if strings.Contains(imageURL, p) {
			return true
		}
	}
	return false
}
