// Package cache holds AI-generated reviews for a fixed time-to-live so a
// repeat lookup within the window skips the upstream model call.
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/prepforge/prepforge/pkg/model"
)

const DefaultTTL = 24 * time.Hour

type entry struct {
	reviews   []model.Review
	timestamp time.Time
}

// ReviewCache is an unbounded in-process map keyed by lowercased
// "company:role". Expiry is checked lazily on Get; there is no background
// sweep. Process restart is the only global reset.
type ReviewCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

type Option func(*ReviewCache)

// WithClock swaps the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *ReviewCache) { c.now = now }
}

func New(ttl time.Duration, opts ...Option) *ReviewCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &ReviewCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key lowercases and concatenates. Whitespace and punctuation are NOT
// normalized, so "Google " and "Google" map to distinct entries. That quirk
// is intentional and load-bearing for compatibility; do not "fix" it.
func Key(company, role string) string {
	return strings.ToLower(company) + ":" + strings.ToLower(role)
}

// Get returns the cached reviews for the pair, or false on miss. An entry
// past its TTL is deleted here and reported as a miss.
func (c *ReviewCache) Get(company, role string) ([]model.Review, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := Key(company, role)
	e, ok := c.entries[k]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.timestamp) >= c.ttl {
		delete(c.entries, k)
		return nil, false
	}
	return e.reviews, true
}

// Put stores reviews under the pair's key with the current timestamp,
// overwriting any previous entry.
func (c *ReviewCache) Put(company, role string, reviews []model.Review) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[Key(company, role)] = entry{reviews: reviews, timestamp: c.now()}
}

// Len reports the number of live plus not-yet-swept entries.
func (c *ReviewCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
