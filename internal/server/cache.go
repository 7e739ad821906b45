package server

import (
	"context"
	"sync"
	"time"

	"github.com/mj1618/ymsp/internal/session"
)

// StatusCache provides a TTL-based cache for the status report so polling
// agents do not spawn a burst of yabai queries.
type StatusCache struct {
	mu        sync.Mutex
	status    session.Status
	timestamp time.Time
	valid     bool
	ttl       time.Duration
}

// NewStatusCache creates a new cache. A ttl of 0 disables caching.
func NewStatusCache(ttl time.Duration) *StatusCache {
	return &StatusCache{ttl: ttl}
}

// Get returns the cached status if within TTL, otherwise reads fresh.
func (c *StatusCache) Get(ctx context.Context, read func(context.Context) (session.Status, error)) (session.Status, error) {
	if c.ttl == 0 {
		return read(ctx)
	}

	c.mu.Lock()
	if c.valid && time.Since(c.timestamp) < c.ttl {
		st := c.status
		c.mu.Unlock()
		return st, nil
	}
	c.mu.Unlock()

	st, err := read(ctx)
	if err != nil {
		return st, err
	}

	c.mu.Lock()
	c.status, c.timestamp, c.valid = st, time.Now(), true
	c.mu.Unlock()
	return st, nil
}

// Invalidate drops the cached status.
func (c *StatusCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}
