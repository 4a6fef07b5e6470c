package processor

import (
	"fmt"
	"testing"
	"time"

	"github.com/nileshd/newsguard/internal/collector"
)

func article(title, link string, published time.Time) collector.Article {
	return collector.Article{Title: title, Link: link, PublishedAt: published}
}

func TestRankDeduplicatesByTitleAndLink(t *testing.T) {
	now := time.Now()
	in := []collector.Article{
		article("Budget session begins", "https://a.example.com/1", now),
		article("Budget session begins", "https://a.example.com/1", now.Add(-time.Hour)),
		article("Budget session begins", "https://b.example.com/1", now.Add(-2*time.Hour)),
	}

	out := NewRanker(0).Rank(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 unique articles, got %d", len(out))
	}
	// First-seen wins on duplicate keys.
	if !out[0].PublishedAt.Equal(now) {
		t.Fatalf("duplicate resolution kept the wrong copy: %v", out[0].PublishedAt)
	}
}

func TestRankOrdersNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	in := []collector.Article{
		article("old", "https://x/1", base.Add(-48*time.Hour)),
		article("new", "https://x/2", base),
		article("mid", "https://x/3", base.Add(-24*time.Hour)),
	}

	out := NewRanker(0).Rank(in)
	want := []string{"new", "mid", "old"}
	for i, title := range want {
		if out[i].Title != title {
			t.Fatalf("position %d = %q, want %q", i, out[i].Title, title)
		}
	}
}

func TestRankZeroTimeSortsAsFresh(t *testing.T) {
	in := []collector.Article{
		article("dated", "https://x/1", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
		article("undated", "https://x/2", time.Time{}),
	}

	out := NewRanker(0).Rank(in)
	if out[0].Title != "undated" {
		t.Fatalf("article without a timestamp should rank as fresh, got %q first", out[0].Title)
	}
}

func TestRankTruncatesToLimit(t *testing.T) {
	base := time.Now()
	in := make([]collector.Article, 0, SnapshotLimit+60)
	for i := 0; i < SnapshotLimit+60; i++ {
		in = append(in, article(
			fmt.Sprintf("story %d", i),
			fmt.Sprintf("https://x/%d", i),
			base.Add(-time.Duration(i)*time.Minute),
		))
	}

	out := NewRanker(0).Rank(in)
	if len(out) != SnapshotLimit {
		t.Fatalf("snapshot bound not enforced: %d", len(out))
	}
	// Truncation drops the oldest entries, not arbitrary ones.
	if out[0].Title != "story 0" || out[len(out)-1].Title != fmt.Sprintf("story %d", SnapshotLimit-1) {
		t.Fatalf("unexpected boundary articles: %q .. %q", out[0].Title, out[len(out)-1].Title)
	}
}

func TestRankCustomLimit(t *testing.T) {
	base := time.Now()
	in := []collector.Article{
		article("a", "https://x/1", base),
		article("b", "https://x/2", base.Add(-time.Minute)),
		article("c", "https://x/3", base.Add(-2*time.Minute)),
	}
	out := NewRanker(2).Rank(in)
	if len(out) != 2 {
		t.Fatalf("custom limit ignored: %d", len(out))
	}
}
