package tenant

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Cache stores resolved gyms between requests.
// Implementations must hand out copies; callers may mutate what Get returns.
type Cache interface {
	// Get retrieves a gym by cache key.
	Get(ctx context.Context, key string) (*Gym, bool)

	// Set stores a gym for ttl.
	Set(ctx context.Context, key string, gym *Gym, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error
}

// SubdomainKey is the cache key for a lookup by routing key.
// Routing keys are case-insensitive.
func SubdomainKey(subdomain string) string {
	return "subdomain:" + strings.ToLower(subdomain)
}

// IDKey is the cache key for a lookup by numeric id.
func IDKey(id int64) string {
	return "id:" + strconv.FormatInt(id, 10)
}

// Keys returns every cache key under which gym may be stored.
func Keys(gym *Gym) []string {
	return []string{SubdomainKey(gym.Subdomain), IDKey(gym.ID)}
}

// NoOpCache disables caching.
type NoOpCache struct{}

func (NoOpCache) Get(context.Context, string) (*Gym, bool)               { return nil, false }
func (NoOpCache) Set(context.Context, string, *Gym, time.Duration) error { return nil }
func (NoOpCache) Delete(context.Context, ...string) error                { return nil }

// DefaultCacheSize bounds the in-memory cache.
const DefaultCacheSize = 1000

type memoryItem struct {
	gym       *Gym
	expiresAt time.Time
}

// MemoryCache is a process-local TTL cache. Expired items are dropped on read;
// when full, the item closest to expiry is evicted.
type MemoryCache struct {
	mu      sync.Mutex
	items   map[string]memoryItem
	maxSize int
	now     func() time.Time
}

// NewMemoryCache creates an in-memory cache holding at most maxSize gyms.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &MemoryCache{
		items:   make(map[string]memoryItem),
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Get returns a copy of the cached gym.
func (c *MemoryCache) Get(_ context.Context, key string) (*Gym, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(item.expiresAt) {
		delete(c.items, key)
		return nil, false
	}
	return item.gym.Clone(), true
}

// Set stores a copy of gym.
func (c *MemoryCache) Set(_ context.Context, key string, gym *Gym, ttl time.Duration) error {
	if gym == nil || ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxSize {
		c.evictLocked()
	}
	c.items[key] = memoryItem{gym: gym.Clone(), expiresAt: c.now().Add(ttl)}
	return nil
}

// Delete removes keys.
func (c *MemoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, k := range keys {
		delete(c.items, k)
	}
	return nil
}

// Len returns the number of stored items, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *MemoryCache) evictLocked() {
	var (
		victim string
		oldest time.Time
	)
	for k, item := range c.items {
		if victim == "" || item.expiresAt.Before(oldest) {
			victim, oldest = k, item.expiresAt
		}
	}
	delete(c.items, victim)
}
