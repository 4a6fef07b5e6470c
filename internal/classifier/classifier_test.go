package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrustedFastPath(t *testing.T) {
	clf := New(nil, nil)

	as := clf.ClassifyArticle(context.Background(), "Economic Times", "Sensex hits record high, RBI official confirms", "")
	assert.Equal(t, LabelReal, as.Label)
	assert.Equal(t, 0.99, as.Confidence)
	require.Len(t, as.Evidence, 1)
	assert.Equal(t, "Verified Source", as.Evidence[0].Text)
}

func TestTrustedFastPathIgnoresKeywordContent(t *testing.T) {
	clf := New(nil, nil)

	// Sensational wording must not matter once the source is trusted.
	as := clf.ClassifyArticle(context.Background(), "The Economic Times", "SHOCKING secret cure banned", "you won't believe")
	assert.Equal(t, LabelReal, as.Label)
	assert.Equal(t, 0.99, as.Confidence)
}

func TestTrustedMatchIsCaseInsensitiveSubstring(t *testing.T) {
	trusted := []string{"BBC"}
	assert.True(t, matchTrusted(trusted, "bbc news"))
	assert.True(t, matchTrusted(trusted, "BBC World Service"))
	assert.False(t, matchTrusted(trusted, "Daily Bugle"))
	assert.False(t, matchTrusted(trusted, ""))
}

func TestHeuristicSuspicious(t *testing.T) {
	clf := New([]string{"nothing matches this"}, nil)

	as := clf.ClassifyArticle(context.Background(), "Random Blog", "SHOCKING secret cure banned by government", "")
	assert.Equal(t, LabelSuspicious, as.Label)
	assert.Equal(t, 0.75, as.Confidence)
	require.Len(t, as.Evidence, 1)
	assert.Equal(t, "Heuristic Analysis", as.Evidence[0].Text)
}

func TestHeuristicReal(t *testing.T) {
	clf := New([]string{"nothing matches this"}, nil)

	as := clf.ClassifyArticle(context.Background(), "Random Blog", "Court issues official statement on market report", "")
	assert.Equal(t, LabelReal, as.Label)
	assert.Equal(t, 0.85, as.Confidence)
}

func TestHeuristicNeutral(t *testing.T) {
	clf := New([]string{"nothing matches this"}, nil)

	as := clf.ClassifyArticle(context.Background(), "Random Blog", "Local fair draws large crowd", "")
	assert.Equal(t, LabelNeutral, as.Label)
	assert.Equal(t, 0.50, as.Confidence)
}

func TestHeuristicDeterministic(t *testing.T) {
	clf := New([]string{"nothing matches this"}, nil)

	first := clf.ClassifyArticle(context.Background(), "Random Blog", "SHOCKING lottery winner", "free money inside")
	for i := 0; i < 5; i++ {
		again := clf.ClassifyArticle(context.Background(), "Random Blog", "SHOCKING lottery winner", "free money inside")
		assert.Equal(t, first.Label, again.Label)
		assert.Equal(t, first.Confidence, again.Confidence)
	}
}

func TestEmptyTextIsUnknown(t *testing.T) {
	clf := New([]string{"nothing matches this"}, nil)

	as := clf.ClassifyArticle(context.Background(), "Random Blog", "", "   ")
	assert.Equal(t, LabelUnknown, as.Label)
	assert.Equal(t, 0.0, as.Confidence)

	as = clf.ClassifyText(context.Background(), "")
	assert.Equal(t, LabelUnknown, as.Label)
}

func TestClassifyTextWithoutOracleIsWholeText(t *testing.T) {
	clf := New([]string{"nothing matches this"}, nil)

	as := clf.ClassifyText(context.Background(), "Official report. Court statement. Market update.")
	assert.Equal(t, LabelReal, as.Label)
	// Without an oracle the heuristic runs once at whole-text granularity.
	require.Len(t, as.Evidence, 1)
	assert.Equal(t, "Heuristic Analysis", as.Evidence[0].Text)
}

func TestHeuristicScorePerMatch(t *testing.T) {
	// Two sensational hits and one legit hit: -5 -5 +1.
	score := heuristicScore("shocking miracle in government offices")
	assert.Equal(t, -9, score)

	// Clickbait opener counts only as a prefix.
	assert.Equal(t, -3, heuristicScore("this is why cats nap"))
	assert.Equal(t, 0, heuristicScore("nobody knows this is why cats nap"))
}

func TestLabelValid(t *testing.T) {
	for _, l := range []Label{LabelReal, LabelFake, LabelSuspicious, LabelNeutral, LabelUnknown} {
		assert.True(t, l.Valid())
	}
	assert.False(t, Label("CLICKBAIT").Valid())
}
