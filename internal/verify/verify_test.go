package verify

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileshd/newsguard/internal/classifier"
	"github.com/nileshd/newsguard/internal/collector"
	"github.com/nileshd/newsguard/internal/storage"
)

func seededService(t *testing.T, titles ...string) *Service {
	t.Helper()
	store := storage.NewStore(filepath.Join(t.TempDir(), "snapshot.json"))

	articles := make([]collector.Article, 0, len(titles))
	for i, title := range titles {
		articles = append(articles, collector.Article{
			Title:       title,
			Link:        "https://news.example.com/" + string(rune('a'+i)),
			Source:      "Example Wire",
			PublishedAt: time.Now(),
		})
	}
	if len(articles) > 0 {
		require.NoError(t, store.Publish(articles))
	}
	return New(store, classifier.New(nil, nil))
}

func TestVerifyMatchesKnownHeadline(t *testing.T) {
	svc := seededService(t, "Parliament passes the data protection bill")

	res := svc.Verify(context.Background(), "Parliament passes the data protection bill")

	assert.True(t, res.VerifiedSource)
	require.NotNil(t, res.DatabaseMatch)
	assert.Equal(t, "Parliament passes the data protection bill", res.DatabaseMatch.Title)
}

func TestVerifyMatchesEitherContainmentDirection(t *testing.T) {
	svc := seededService(t, "Monsoon arrives early in Kerala")

	// Candidate text wraps the headline.
	res := svc.Verify(context.Background(), "BREAKING: monsoon arrives early in Kerala, says IMD")
	assert.True(t, res.VerifiedSource)

	// Candidate text is a fragment of the headline.
	res = svc.Verify(context.Background(), "Monsoon arrives early")
	assert.True(t, res.VerifiedSource)
}

func TestVerifyFirstSnapshotMatchWins(t *testing.T) {
	svc := seededService(t,
		"Election results announced today",
		"Election results announced today in three states",
	)

	res := svc.Verify(context.Background(), "election results announced today")
	require.NotNil(t, res.DatabaseMatch)
	assert.Equal(t, "Election results announced today", res.DatabaseMatch.Title)
}

func TestVerifyNoMatchStillClassifies(t *testing.T) {
	svc := seededService(t, "Cabinet reshuffle expected next week")

	res := svc.Verify(context.Background(), "SHOCKING miracle secret cure doctors hate")

	assert.False(t, res.VerifiedSource)
	assert.Nil(t, res.DatabaseMatch)
	require.NotEmpty(t, res.AIAnalysis)
	assert.Equal(t, classifier.LabelSuspicious, res.AIAnalysis[0].Label)
	// Suspicious alone does not flip the binary flag.
	assert.Equal(t, classifier.LabelReal, res.OverallPrediction)
}

func TestVerifyEmptySnapshot(t *testing.T) {
	svc := seededService(t)

	res := svc.Verify(context.Background(), "Government announced an official update")
	assert.False(t, res.VerifiedSource)
	assert.Equal(t, classifier.LabelReal, res.OverallPrediction)
}

func TestVerifyTrimsInput(t *testing.T) {
	svc := seededService(t, "Supreme Court verdict on spectrum case")

	res := svc.Verify(context.Background(), "   Supreme Court verdict on spectrum case \n")
	assert.True(t, res.VerifiedSource)
	assert.Equal(t, "Supreme Court verdict on spectrum case", res.ExtractedText)
}

func TestVerifyEmptyTextNeverMatches(t *testing.T) {
	svc := seededService(t, "Any headline at all")

	res := svc.Verify(context.Background(), "   ")
	assert.False(t, res.VerifiedSource)
	assert.Nil(t, res.DatabaseMatch)
}
