package content

import (
	"context"
	"sync"
	"time"
)

// Cache is an in-memory TTL cache in front of a PostSource.
type Cache struct {
	mu      sync.RWMutex
	posts   []PostRecord
	loaded  bool
	fetched time.Time
	ttl     time.Duration
	source  PostSource
}

// NewCache creates a Cache backed by source.
func NewCache(source PostSource, ttl time.Duration) *Cache {
	return &Cache{source: source, ttl: ttl}
}

func (c *Cache) valid() bool {
	return c.loaded && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.loaded = false
	c.mu.Unlock()
}

// Posts returns the cached posts, reloading from the source when stale.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *Cache) Posts(ctx context.Context) ([]PostRecord, error) {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts, nil
	}
	posts, err := c.source.Posts(ctx)
	if err != nil {
		return nil, err
	}
	c.posts = posts
	c.loaded = true
	c.fetched = time.Now()
	return c.posts, nil
}
