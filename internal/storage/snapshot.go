package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/nileshd/newsguard/internal/collector"
)

// ErrEmptyBatch is returned when a cycle produced nothing; the previous
// snapshot stays published and its generation timestamp is untouched.
var ErrEmptyBatch = errors.New("empty batch, previous snapshot retained")

// Snapshot is one published generation of the latest news. It is immutable:
// a new cycle produces a new Snapshot, never edits in place.
type Snapshot struct {
	Articles    []collector.Article
	GeneratedAt time.Time
}

// Store holds the current snapshot behind an atomic pointer and mirrors
// every publication to a JSON file used to seed memory after a restart.
// Readers never lock and never observe a partially built generation.
type Store struct {
	path    string
	current atomic.Pointer[Snapshot]
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Current returns the latest published snapshot, or nil before the first
// publication.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Articles returns the current snapshot's articles (nil when none).
func (s *Store) Articles() []collector.Article {
	if snap := s.current.Load(); snap != nil {
		return snap.Articles
	}
	return nil
}

// Publish swaps in a new generation built from articles and rewrites the
// durable twin. An empty batch is rejected so a cycle where every source
// failed cannot blank out last-known-good data. The in-memory swap happens
// even if the file write fails; the write error is returned for logging.
func (s *Store) Publish(articles []collector.Article) error {
	if len(articles) == 0 {
		return ErrEmptyBatch
	}

	snap := &Snapshot{
		Articles:    articles,
		GeneratedAt: time.Now(),
	}
	s.current.Store(snap)

	if err := s.persist(articles); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}

// Load seeds the in-memory snapshot from the durable twin. A missing file
// is a normal first start, not an error. The file's mtime stands in for the
// original generation timestamp.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read snapshot file: %w", err)
	}

	var articles []collector.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return fmt.Errorf("decode snapshot file: %w", err)
	}
	if len(articles) == 0 {
		return nil
	}

	generatedAt := time.Now()
	if fi, err := os.Stat(s.path); err == nil {
		generatedAt = fi.ModTime()
	}

	s.current.Store(&Snapshot{Articles: articles, GeneratedAt: generatedAt})
	return nil
}

// persist rewrites the snapshot file wholesale via temp file + rename, so a
// crash mid-write leaves the previous file intact.
func (s *Store) persist(articles []collector.Article) error {
	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
