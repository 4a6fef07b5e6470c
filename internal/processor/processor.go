package processor

import (
	"sort"
	"time"

	"github.com/nileshd/newsguard/internal/collector"
)

// SnapshotLimit bounds how many articles a published snapshot may carry.
const SnapshotLimit = 350

// Ranker merges a cycle's candidate batch into the bounded, ordered list a
// snapshot is built from: deduplicate by (title, link), order newest-first,
// truncate.
type Ranker struct {
	limit int
}

// NewRanker returns a Ranker. limit <= 0 means SnapshotLimit.
func NewRanker(limit int) *Ranker {
	if limit <= 0 {
		limit = SnapshotLimit
	}
	return &Ranker{limit: limit}
}

// Rank processes one candidate batch. The output is deterministic for a
// given input batch; on duplicate keys the first-seen article wins.
func (r *Ranker) Rank(items []collector.Article) []collector.Article {
	out := make([]collector.Article, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for _, it := range items {
		key := it.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}

	// Missing timestamps sort as "now" so malformed dates do not sink
	// fresh content to the bottom.
	now := time.Now()
	sort.SliceStable(out, func(i, j int) bool {
		return effectiveTime(out[i], now).After(effectiveTime(out[j], now))
	})

	if len(out) > r.limit {
		out = out[:r.limit]
	}
	return out
}

func effectiveTime(a collector.Article, now time.Time) time.Time {
	if a.PublishedAt.IsZero() {
		return now
	}
	return a.PublishedAt
}
