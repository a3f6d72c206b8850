package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wordbook/dictionary/internal/word"
)

// SearchCache stores search results keyed by query. Entries are written under
// the generation observed before the store was queried, so a result computed
// concurrently with a mutation is never served after that mutation.
type SearchCache interface {
	// Get returns the cached result for query, the current generation, and whether it was a hit.
	Get(ctx context.Context, query string) ([]*word.WordEntry, int64, bool, error)
	Set(ctx context.Context, generation int64, query string, entries []*word.WordEntry) error
	// Invalidate makes every previously cached result unreachable.
	Invalidate(ctx context.Context) error
}

// RedisSearchCache implements SearchCache on Redis. Keys:
//   <prefix>gen                 generation counter (no TTL)
//   <prefix>q:<gen>:<query>     JSON-encoded []WordEntry with TTL
type RedisSearchCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisSearchCache creates a Redis-backed search cache. Prefix may be empty.
func NewRedisSearchCache(client *redis.Client, prefix string, ttl time.Duration) *RedisSearchCache {
	if prefix == "" {
		prefix = "dictionary:search:"
	}
	return &RedisSearchCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisSearchCache) genKey() string { return c.prefix + "gen" }

// matching is case-insensitive, so queries differing only in case share an entry
func (c *RedisSearchCache) queryKey(gen int64, query string) string {
	return c.prefix + "q:" + strconv.FormatInt(gen, 10) + ":" + strings.ToLower(query)
}

func (c *RedisSearchCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, c.genKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *RedisSearchCache) Get(ctx context.Context, query string) ([]*word.WordEntry, int64, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, 0, false, err
	}
	b, err := c.client.Get(ctx, c.queryKey(gen, query)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, gen, false, nil
		}
		return nil, gen, false, err
	}
	var entries []*word.WordEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, gen, false, err
	}
	return entries, gen, true, nil
}

func (c *RedisSearchCache) Set(ctx context.Context, generation int64, query string, entries []*word.WordEntry) error {
	if entries == nil {
		entries = []*word.WordEntry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.queryKey(generation, query), b, c.ttl).Err()
}

func (c *RedisSearchCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, c.genKey()).Err()
}
