package classifier

import "strings"

// Keyword sets for the last-resort heuristic tier. Matching is done on the
// lowercase concatenation of title and summary.
var (
	sensationalKeywords = []string{
		"shocking", "you won't believe", "omg", "miracle", "secret cure",
		"banned", "what they don't want you to know", "100% working",
		"free money", "winner", "lottery", "viral video",
	}

	clickbaitOpeners = []string{
		"this is why", "the reason why", "what happened next",
	}

	legitimateKeywords = []string{
		"report", "official", "statement", "announced", "update", "scores",
		"market", "sensex", "nifty", "government", "police", "court",
		"stats", "match", "tournament", "meeting", "launch", "forecast",
	}
)

const (
	sensationalPenalty = 5
	clickbaitPenalty   = 3
)

// heuristicScore computes the raw keyword score for lowercase text.
func heuristicScore(text string) int {
	score := 0
	for _, k := range sensationalKeywords {
		if strings.Contains(text, k) {
			score -= sensationalPenalty
		}
	}
	for _, c := range clickbaitOpeners {
		if strings.HasPrefix(text, c) {
			score -= clickbaitPenalty
		}
	}
	for _, k := range legitimateKeywords {
		if strings.Contains(text, k) {
			score++
		}
	}
	return score
}

// heuristicCheck maps text to a label and confidence. Deterministic for
// fixed input. Empty text yields UNKNOWN so callers can tell "no signal"
// apart from a genuinely neutral score.
func heuristicCheck(text string) (Label, float64) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return LabelUnknown, 0
	}

	score := heuristicScore(text)
	switch {
	case score < -2:
		return LabelSuspicious, 0.75
	case score >= 1:
		return LabelReal, 0.85
	default:
		return LabelNeutral, 0.50
	}
}
