package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vismify/internal/domain"
)

const (
	catalogPrefix = "catalog"
	catalogKey    = "tools"
	catalogTTL    = 10 * time.Minute
)

// JSONCache stores values of T as JSON under "prefix:key". A nil cache or
// a cache without a client behaves as an always-empty cache.
type JSONCache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewJSONCache[T any](client *redis.Client, prefix string, ttl time.Duration) *JSONCache[T] {
	return &JSONCache[T]{client: client, prefix: prefix, ttl: ttl}
}

func (c *JSONCache[T]) key(k string) string {
	return c.prefix + ":" + k
}

func (c *JSONCache[T]) Get(ctx context.Context, key string) (*T, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	value, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var out T
	if err := json.Unmarshal(value, &out); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", c.key(key), err)
	}
	return &out, nil
}

func (c *JSONCache[T]) Set(ctx context.Context, key string, value *T) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.key(key), err)
	}
	return c.client.Set(ctx, c.key(key), data, c.ttl).Err()
}

func (c *JSONCache[T]) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.key(key)).Err()
}

// CatalogCache keeps the whole tool list under a single key.
type CatalogCache struct {
	cache *JSONCache[[]domain.Tool]
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = catalogTTL
	}
	return &CatalogCache{cache: NewJSONCache[[]domain.Tool](client, catalogPrefix, ttl)}
}

func (c *CatalogCache) Get(ctx context.Context) ([]domain.Tool, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	tools, err := c.cache.Get(ctx, catalogKey)
	if err != nil || tools == nil {
		return nil, false, err
	}
	return *tools, true, nil
}

func (c *CatalogCache) Set(ctx context.Context, tools []domain.Tool) error {
	if c == nil {
		return nil
	}
	return c.cache.Set(ctx, catalogKey, &tools)
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.cache.Delete(ctx, catalogKey)
}
