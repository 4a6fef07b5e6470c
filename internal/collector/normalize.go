package collector

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

const missingTitle = "No Title"

// NormalizeEntry maps one raw feed entry into an Article stub (no
// credibility yet). It never fails: missing fields get explicit defaults
// and an unparseable publish date becomes the ingestion time.
func NormalizeEntry(item *gofeed.Item, sourceName string) Article {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		title = missingTitle
	}

	summary := item.Description
	if summary == "" {
		summary = item.Content
	}

	return Article{
		Title:       title,
		Link:        strings.TrimSpace(item.Link),
		Summary:     StripHTML(summary),
		PublishedAt: publishTime(item),
		Source:      sourceName,
	}
}

// publishTime walks the date priority chain: structured feed date, then a
// layout-list parse of the raw string, then now.
func publishTime(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	if t, ok := parseDateString(item.Published); ok {
		return t
	}
	return time.Now()
}

var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 -0700",
	"2006-01-02",
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StripHTML reduces a markup-laden summary to plain text with collapsed
// whitespace. Input that fails to parse comes back trimmed as-is.
func StripHTML(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
