package feeds

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tier marks whether a source has been vetted ahead of time.
type Tier string

const (
	TierTrusted    Tier = "trusted"
	TierUnverified Tier = "unverified"
)

// Source describes one syndication endpoint. Immutable after load.
type Source struct {
	URL  string `yaml:"url"`
	Name string `yaml:"name"`
	Tier Tier   `yaml:"tier"`
}

// Defaults returns the built-in registry. Display names are fallbacks;
// the feed's own title wins when the fetch succeeds.
func Defaults() []Source {
	return []Source{
		{URL: "https://timesofindia.indiatimes.com/rssfeedstopstories.cms", Name: "Times of India", Tier: TierTrusted},
		{URL: "https://zeenews.india.com/rss/india-national-news.xml", Name: "Zee News", Tier: TierTrusted},
		{URL: "https://www.thehindu.com/news/national/feeder/default.rss", Name: "The Hindu", Tier: TierTrusted},
		{URL: "https://feeds.feedburner.com/ndtvnews-top-stories", Name: "NDTV", Tier: TierTrusted},
		{URL: "https://www.hindustantimes.com/feeds/rss/india-news/rssfeed.xml", Name: "Hindustan Times", Tier: TierTrusted},
		{URL: "https://indianexpress.com/feed/", Name: "Indian Express", Tier: TierUnverified},
		{URL: "https://www.business-standard.com/rss/latest-news-1.rss", Name: "Business Standard", Tier: TierUnverified},
		{URL: "https://economictimes.indiatimes.com/rssfeedstopstories.cms", Name: "Economic Times", Tier: TierTrusted},
		{URL: "https://www.moneycontrol.com/rss/latestnews.xml", Name: "Moneycontrol", Tier: TierTrusted},
		{URL: "http://feeds.bbci.co.uk/news/rss.xml", Name: "BBC News", Tier: TierTrusted},
		{URL: "http://feeds.bbci.co.uk/news/world/rss.xml", Name: "BBC World", Tier: TierTrusted},
		{URL: "http://rss.cnn.com/rss/edition.rss", Name: "CNN", Tier: TierUnverified},
		{URL: "https://www.aljazeera.com/xml/rss/all.xml", Name: "Al Jazeera", Tier: TierUnverified},
		{URL: "https://www.espncricinfo.com/rss/content/story/feeds/0.xml", Name: "ESPNcricinfo", Tier: TierTrusted},
		{URL: "https://techcrunch.com/feed/", Name: "TechCrunch", Tier: TierUnverified},
		{URL: "https://www.wired.com/feed/rss", Name: "Wired", Tier: TierUnverified},
		{URL: "https://www.theverge.com/rss/index.xml", Name: "The Verge", Tier: TierUnverified},
		{URL: "https://www.cnbc.com/id/100003114/device/rss/rss.html", Name: "CNBC", Tier: TierUnverified},
	}
}

type registryFile struct {
	Sources []Source `yaml:"sources"`
}

// Load returns the registry from path, or Defaults when path is empty.
// A file with zero valid sources is an error rather than a silently empty registry.
func Load(path string) ([]Source, error) {
	if path == "" {
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feeds file: %w", err)
	}

	var rf registryFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse feeds file: %w", err)
	}

	out := make([]Source, 0, len(rf.Sources))
	for _, s := range rf.Sources {
		if s.URL == "" {
			continue
		}
		if s.Tier != TierTrusted {
			s.Tier = TierUnverified
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("feeds file %s contains no sources", path)
	}
	return out, nil
}

// TrustedNames lists the display names of trusted-tier sources.
func TrustedNames(sources []Source) []string {
	var names []string
	for _, s := range sources {
		if s.Tier == TierTrusted && s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return names
}
