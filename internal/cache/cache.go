package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when a key is absent or the cache is bypassed.
var ErrMiss = errors.New("cache miss")

// Cache is a Redis-backed read cache for display data. It is never
// authoritative: every operation degrades to a miss when Redis is
// unreachable, and callers always fall back to the store.
type Cache struct {
	client *redis.Client

	warnedUnavailable atomic.Bool
}

// New connects to Redis at addr. An empty addr, or an unreachable
// server, yields a cache that bypasses every operation.
func New(addr, password string) *Cache {
	if addr == "" {
		return &Cache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("cache: redis unavailable, bypassing: %v", err)
		_ = client.Close()
		return &Cache{}
	}

	return &Cache{client: client}
}

func (c *Cache) bypassed() bool {
	return c == nil || c.client == nil
}

func (c *Cache) warnOnce(err error) {
	if c == nil {
		return
	}
	if c.warnedUnavailable.CompareAndSwap(false, true) {
		log.Printf("cache: redis unavailable, bypassing: %v", err)
	}
}

// GetJSON loads the value stored at key into dest. Returns ErrMiss when
// the key is absent or the cache is bypassed.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) error {
	if c.bypassed() {
		return ErrMiss
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		c.warnOnce(err)
		return ErrMiss
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return ErrMiss
	}
	return nil
}

// SetJSON stores value at key for the given TTL, best effort.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c.bypassed() {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.warnOnce(err)
	}
}

// Delete removes keys, best effort. Used to invalidate public views
// after mutations.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c.bypassed() || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.warnOnce(err)
	}
}
