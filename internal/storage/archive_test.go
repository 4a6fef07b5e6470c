package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nileshd/newsguard/internal/collector"
)

func TestSaveBatchNilArchiveIsNoop(t *testing.T) {
	var a *Archive
	err := a.SaveBatch([]collector.Article{{Title: "x", Link: "https://x"}})
	assert.NoError(t, err)
}

func TestHashLinkIsStable(t *testing.T) {
	a := hashLink("https://news.example.com/1")
	b := hashLink("https://news.example.com/1")
	assert.Equal(t, a, b)
	assert.Len(t, a, 40)
	assert.NotEqual(t, a, hashLink("https://news.example.com/2"))
}

func TestToValidUTF8ReplacesGarbage(t *testing.T) {
	in := "headline \xff\xfe text"
	out := toValidUTF8(in)
	assert.NotContains(t, out, "\xff")
	assert.Contains(t, out, "headline")
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 10))
	assert.Equal(t, "ab", truncateRunes("abcdef", 2))
	assert.Equal(t, "", truncateRunes("abc", 0))
	// Truncation never splits a multi-byte rune.
	assert.Equal(t, "नम", truncateRunes("नमस्ते", 2))
}
