package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nileshd/newsguard/internal/collector"
	"github.com/nileshd/newsguard/internal/logger"
)

const searchCacheTTL = 5 * time.Minute

// SearchCache keeps recent topic-search results in Redis so repeated
// queries do not re-fetch and re-classify an entire feed. Optional; a nil
// *SearchCache is a no-op.
type SearchCache struct {
	rdb *redis.Client
}

// NewSearchCache connects to Redis at addr; empty addr disables caching.
// A failed ping is only a warning, the cache degrades to pass-through.
func NewSearchCache(addr string) *SearchCache {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warnf("redis ping failed: %v", err)
	}
	return &SearchCache{rdb: rdb}
}

func searchKey(topic string) string {
	return fmt.Sprintf("search:q:%s", topic)
}

// Get returns the cached result set for topic, if present.
func (c *SearchCache) Get(ctx context.Context, topic string) ([]collector.Article, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	bs, err := c.rdb.Get(ctx, searchKey(topic)).Bytes()
	if err != nil {
		return nil, false
	}
	var cached []collector.Article
	if err := json.Unmarshal(bs, &cached); err != nil {
		return nil, false
	}
	return cached, true
}

// Set caches a result set for topic; failures are silently dropped.
func (c *SearchCache) Set(ctx context.Context, topic string, articles []collector.Article) {
	if c == nil || c.rdb == nil || len(articles) == 0 {
		return
	}
	if bs, err := json.Marshal(articles); err == nil {
		_ = c.rdb.Set(ctx, searchKey(topic), bs, searchCacheTTL).Err()
	}
}
