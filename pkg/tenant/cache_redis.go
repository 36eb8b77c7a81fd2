package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces tenant cache keys in a shared Redis.
const DefaultRedisPrefix = "gymnexus:tenant:"

// RedisCache shares resolved gyms between instances. Values are JSON, so every
// Get decodes a fresh copy.
type RedisCache struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisCache creates a Redis-backed cache. The client is owned by the caller.
func NewRedisCache(client redis.UniversalClient, prefix string) *RedisCache {
	if client == nil {
		panic("tenant: redis client cannot be nil")
	}
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisCache{client: client, prefix: prefix}
}

// Get returns the cached gym. Decode and transport errors count as a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (*Gym, bool) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return nil, false
	}

	var gym Gym
	if err := json.Unmarshal(data, &gym); err != nil {
		return nil, false
	}
	return &gym, true
}

// Set stores gym as JSON for ttl.
func (c *RedisCache) Set(ctx context.Context, key string, gym *Gym, ttl time.Duration) error {
	if gym == nil || ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(gym)
	if err != nil {
		return fmt.Errorf("tenant cache: encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.prefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("tenant cache: set %s: %w", key, err)
	}
	return nil
}

// Delete removes keys.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.prefix + k
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("tenant cache: delete: %w", err)
	}
	return nil
}
