package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/saasbase/pkg/logger"
)

const (
	defaultCachePrefix = "storage:"
	defaultCacheTTL    = 10 * time.Minute
)

// CachedRepository is a read-through Redis cache in front of another
// Repository. Cache failures are logged and never fail an operation.
type CachedRepository struct {
	next   Repository
	client redis.Cmdable
	prefix string
	ttl    time.Duration
	log    *slog.Logger
}

// CacheOption configures a CachedRepository.
type CacheOption func(*CachedRepository)

// WithCacheTTL sets how long cached items live.
func WithCacheTTL(ttl time.Duration) CacheOption {
	return func(c *CachedRepository) { c.ttl = ttl }
}

// WithCachePrefix sets the prefix of cache keys.
func WithCachePrefix(prefix string) CacheOption {
	return func(c *CachedRepository) { c.prefix = prefix }
}

// WithCacheLogger sets the logger for cache failures.
func WithCacheLogger(l *slog.Logger) CacheOption {
	return func(c *CachedRepository) { c.log = l }
}

// NewCachedRepository wraps next with a cache stored in client.
func NewCachedRepository(next Repository, client redis.Cmdable, opts ...CacheOption) *CachedRepository {
	c := &CachedRepository{
		next:   next,
		client: client,
		prefix: defaultCachePrefix,
		ttl:    defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = logger.OrNop(c.log).With(logger.Component(component))
	return c
}

func (c *CachedRepository) cacheKey(key Key) string {
	return c.prefix + key.String()
}

func (c *CachedRepository) Get(ctx context.Context, key Key) ([]Item, error) {
	data, err := c.client.Get(ctx, c.cacheKey(key)).Bytes()
	switch {
	case err == nil:
		var items []Item
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
		c.log.WarnContext(ctx, "Dropping undecodable cache entry", logger.StorageKey(key.String()))
	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "Cache read failed", logger.StorageKey(key.String()), logger.Error(err))
	}

	items, err := c.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, items)
	return items, nil
}

func (c *CachedRepository) Save(ctx context.Context, key Key, items []Item) ([]Item, error) {
	saved, err := c.next.Save(ctx, key, items)
	if err != nil {
		c.invalidate(ctx, key)
		return nil, err
	}
	c.store(ctx, key, saved)
	return saved, nil
}

func (c *CachedRepository) Delete(ctx context.Context, key Key) (bool, error) {
	ok, err := c.next.Delete(ctx, key)
	c.invalidate(ctx, key)
	return ok, err
}

func (c *CachedRepository) store(ctx context.Context, key Key, items []Item) {
	data, err := json.Marshal(items)
	if err != nil {
		c.log.WarnContext(ctx, "Cannot encode items for cache", logger.StorageKey(key.String()), logger.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.cacheKey(key), data, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "Cache write failed", logger.StorageKey(key.String()), logger.Error(err))
	}
}

func (c *CachedRepository) invalidate(ctx context.Context, key Key) {
	if err := c.client.Del(ctx, c.cacheKey(key)).Err(); err != nil {
		c.log.WarnContext(ctx, "Cache invalidation failed", logger.StorageKey(key.String()), logger.Error(err))
	}
}
