package collector

import (
	"time"

	"github.com/nileshd/newsguard/internal/classifier"
)

// Article is the canonical record every raw feed entry is normalized into.
// JSON tags match the wire shape served by /news and the snapshot file.
type Article struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Summary     string    `json:"summary"`
	PublishedAt time.Time `json:"published"`
	Source      string    `json:"source"`
	ImageURL    string    `json:"image_url"`

	OverallLabel classifier.Label      `json:"overall_label"`
	Confidence   float64               `json:"confidence"`
	Sentences    []classifier.Evidence `json:"sentences"`
}

// Key is the deduplication identity of an article.
func (a Article) Key() string {
	return a.Title + "\x00" + a.Link
}

// SetAssessment records the credibility verdict on the article.
func (a *Article) SetAssessment(as classifier.Assessment) {
	a.OverallLabel = as.Label
	a.Confidence = as.Confidence
	a.Sentences = as.Evidence
}
