package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileshd/newsguard/internal/collector"
)

func sample(title string) collector.Article {
	return collector.Article{
		Title:       title,
		Link:        "https://news.example.com/" + title,
		Source:      "Example Wire",
		PublishedAt: time.Now(),
	}
}

func TestPublishAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")

	store := NewStore(path)
	require.NoError(t, store.Publish([]collector.Article{sample("one"), sample("two")}))

	// A fresh store restores the published generation from disk.
	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())
	require.NotNil(t, reloaded.Current())
	assert.Len(t, reloaded.Articles(), 2)
	assert.Equal(t, "one", reloaded.Articles()[0].Title)
}

func TestPublishRejectsEmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	store := NewStore(path)

	require.NoError(t, store.Publish([]collector.Article{sample("keep")}))
	before := store.Current()

	err := store.Publish(nil)
	assert.ErrorIs(t, err, ErrEmptyBatch)

	// Last known good stays published with its original timestamp.
	after := store.Current()
	require.NotNil(t, after)
	assert.Equal(t, before.GeneratedAt, after.GeneratedAt)
	assert.Len(t, after.Articles, 1)
}

func TestLoadMissingFileIsFirstStart(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope", "snapshot.json"))
	require.NoError(t, store.Load())
	assert.Nil(t, store.Current())
	assert.Nil(t, store.Articles())
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewStore(path)
	assert.Error(t, store.Load())
	assert.Nil(t, store.Current())
}

func TestLoadEmptyArrayPublishesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))

	store := NewStore(path)
	require.NoError(t, store.Load())
	assert.Nil(t, store.Current())
}

func TestConcurrentReadersDuringPublish(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	store := NewStore(path)
	require.NoError(t, store.Publish([]collector.Article{sample("seed")}))

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				// A reader must always see a complete generation.
				snap := store.Current()
				if snap == nil || len(snap.Articles) == 0 {
					t.Error("observed an empty generation")
					return
				}
			}
		}()
	}

	for i := 0; i < 20; i++ {
		require.NoError(t, store.Publish([]collector.Article{sample("gen"), sample("gen2")}))
	}
	close(stop)
	wg.Wait()
}
