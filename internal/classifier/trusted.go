package classifier

import "strings"

// DefaultTrustedSources returns the built-in pre-vetted outlet terms.
// Matching is case-insensitive substring: a term must appear inside the
// article's source name. Substring matching keeps "BBC News" and
// "BBC World" on the fast path but can be gamed by a hostile source
// naming itself after a trusted outlet; callers wanting stricter
// behavior can supply their own list of full names.
func DefaultTrustedSources() []string {
	return []string{
		"Times of India", "Zee News", "BBC", "The Hindu", "NDTV",
		"India Today", "Livemint", "Moneycontrol", "ICC", "ESPN",
		"Cricbuzz", "Google News", "Economic Times", "Hindustan Times",
		"News18",
	}
}

// matchTrusted reports whether sourceName falls under any trusted term.
func matchTrusted(trusted []string, sourceName string) bool {
	name := strings.ToLower(strings.TrimSpace(sourceName))
	if name == "" {
		return false
	}
	for _, t := range trusted {
		if t == "" {
			continue
		}
		if strings.Contains(name, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
