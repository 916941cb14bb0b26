package suggestcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"hyspell/internal/corrector"
)

// ErrMiss is returned by Get when the word has no cached result.
var ErrMiss = errors.New("suggestcache: miss")

const keyPrefix = "hyspell:correct:"

// Cache wraps a Redis client to store correction results per word.
// Keys live under a generation, normally corrector.Corrector.Fingerprint, so a
// restart with other weights or another vocabulary never reads old results.
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New creates a Cache whose keys are scoped to generation.
func New(client *redis.Client, ttl time.Duration, generation string) *Cache {
	return &Cache{client: client, prefix: keyPrefix + generation + ":", ttl: ttl}
}

// Get returns the cached result for word.
func (c *Cache) Get(ctx context.Context, word string) (corrector.Result, error) {
	var res corrector.Result
	data, err := c.client.Get(ctx, c.prefix+word).Bytes()
	if errors.Is(err, redis.Nil) {
		return res, ErrMiss
	}
	if err != nil {
		return res, fmt.Errorf("suggestcache: get %q: %w", word, err)
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return res, fmt.Errorf("suggestcache: decode %q: %w", word, err)
	}
	return res, nil
}

// Set stores the result for word.
func (c *Cache) Set(ctx context.Context, word string, res corrector.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.prefix+word, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("suggestcache: set %q: %w", word, err)
	}
	return nil
}

// FlushStale removes results left by other generations. They are unreachable
// already; this only frees memory before their TTL runs out.
func (c *Cache) FlushStale(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 500).Iterator()
	var keys []string
	for iter.Next(ctx) {
		if key := iter.Val(); !strings.HasPrefix(key, c.prefix) {
			keys = append(keys, key)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("suggestcache: scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("suggestcache: delete: %w", err)
	}
	return nil
}
