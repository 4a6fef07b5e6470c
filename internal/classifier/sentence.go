package classifier

import "strings"

var sentenceEnders = []rune{'.', '!', '?', '।', '\n'}

func isSentenceEnder(r rune) bool {
	for _, e := range sentenceEnders {
		if r == e {
			return true
		}
	}
	return false
}

// splitSentences breaks text into trimmed, non-empty sentences. Good enough
// for per-segment credibility scoring; it does not try to handle
// abbreviations or decimal points specially.
func splitSentences(text string) []string {
	var out []string
	var b strings.Builder

	flush := func() {
		s := strings.TrimSpace(b.String())
		b.Reset()
		if s != "" {
			out = append(out, s)
		}
	}

	for _, r := range text {
		b.WriteRune(r)
		if isSentenceEnder(r) {
			flush()
		}
	}
	flush()
	return out
}
