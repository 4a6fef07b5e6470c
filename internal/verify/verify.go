package verify

import (
	"context"
	"strings"

	"github.com/nileshd/newsguard/internal/classifier"
	"github.com/nileshd/newsguard/internal/collector"
	"github.com/nileshd/newsguard/internal/storage"
)

// Result is the outcome of verifying an externally supplied text against
// the known-article snapshot plus a fresh classification.
type Result struct {
	ExtractedText     string                `json:"extracted_text"`
	DatabaseMatch     *collector.Article    `json:"database_match"`
	AIAnalysis        []classifier.Evidence `json:"ai_analysis"`
	OverallPrediction classifier.Label      `json:"overall_prediction"`
	VerifiedSource    bool                  `json:"verified_source"`
}

// Service matches candidate text against the current snapshot and always
// runs the classifier for an independent verdict; a database match is a
// corroborating signal, not an override.
type Service struct {
	store *storage.Store
	clf   *classifier.Classifier
}

func New(store *storage.Store, clf *classifier.Classifier) *Service {
	return &Service{store: store, clf: clf}
}

// fakeIndicating is the label set that flips the binary convenience flag.
var fakeIndicating = map[classifier.Label]bool{
	classifier.LabelFake: true,
}

// Verify runs the matching rule and the classifier on text.
func (s *Service) Verify(ctx context.Context, text string) Result {
	text = strings.TrimSpace(text)

	match := s.matchSnapshot(text)
	assessment := s.clf.ClassifyText(ctx, text)

	overall := classifier.LabelReal
	if fakeIndicating[assessment.Label] {
		overall = classifier.LabelFake
	}

	return Result{
		ExtractedText:     text,
		DatabaseMatch:     match,
		AIAnalysis:        assessment.Evidence,
		OverallPrediction: overall,
		VerifiedSource:    match != nil,
	}
}

// matchSnapshot returns the first article, in snapshot order, whose title
// and the candidate text contain each other (either direction,
// case-insensitive). nil means no known article matches.
func (s *Service) matchSnapshot(text string) *collector.Article {
	if text == "" {
		return nil
	}
	lowered := strings.ToLower(text)

	for _, art := range s.store.Articles() {
		title := strings.ToLower(strings.TrimSpace(art.Title))
		if title == "" {
			continue
		}
		if strings.Contains(lowered, title) || strings.Contains(title, lowered) {
			matched := art
			return &matched
		}
	}
	return nil
}
