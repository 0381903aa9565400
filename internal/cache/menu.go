package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/polkiloo/canteen/internal/domain/model"
)

const (
	menuItemsPrefix      = "menu:items:v"
	menuCategoriesPrefix = "menu:categories:v"
	menuVersionKey       = "menu:version"
)

// redisClient is the subset of *redis.Client used by the cache.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisMenuCache caches the public menu listing. Invalidation bumps a
// version counter so stale keys simply expire.
type RedisMenuCache struct {
	client redisClient
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisMenuCache creates RedisMenuCache over an existing client.
func NewRedisMenuCache(client redisClient, ttl time.Duration, logger *zap.Logger) *RedisMenuCache {
	return &RedisMenuCache{client: client, ttl: ttl, logger: logger}
}

// Items returns cached available items along with the version it looked at.
// A version below zero means the lookup failed and nothing should be stored.
func (c *RedisMenuCache) Items(ctx context.Context) ([]model.MenuItem, int64, bool) {
	var items []model.MenuItem
	version, ok := c.load(ctx, menuItemsPrefix, &items)
	if !ok {
		return nil, version, false
	}
	return items, version, true
}

// StoreItems caches available items under the version observed at the miss.
func (c *RedisMenuCache) StoreItems(ctx context.Context, version int64, items []model.MenuItem) {
	c.store(ctx, menuItemsPrefix, version, items)
}

// Categories returns cached category labels along with the version it looked at.
func (c *RedisMenuCache) Categories(ctx context.Context) ([]string, int64, bool) {
	var categories []string
	version, ok := c.load(ctx, menuCategoriesPrefix, &categories)
	if !ok {
		return nil, version, false
	}
	return categories, version, true
}

// StoreCategories caches category labels under the version observed at the miss.
func (c *RedisMenuCache) StoreCategories(ctx context.Context, version int64, categories []string) {
	c.store(ctx, menuCategoriesPrefix, version, categories)
}

// Invalidate drops every cached menu view by bumping the version.
func (c *RedisMenuCache) Invalidate(ctx context.Context) {
	version, err := c.client.Incr(ctx, menuVersionKey).Result()
	if err != nil {
		c.logger.Error("failed to invalidate menu cache", zap.Error(err))
		return
	}
	c.logger.Debug("menu cache invalidated", zap.Int64("version", version))
}

// Close releases the underlying client.
func (c *RedisMenuCache) Close() error {
	return c.client.Close()
}

func (c *RedisMenuCache) version(ctx context.Context) (int64, error) {
	raw, err := c.client.Get(ctx, menuVersionKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

func versionedKey(prefix string, version int64) string {
	return fmt.Sprintf("%s%d", prefix, version)
}

func (c *RedisMenuCache) load(ctx context.Context, prefix string, dest interface{}) (int64, bool) {
	version, err := c.version(ctx)
	if err != nil {
		c.logger.Warn("menu cache version lookup failed", zap.Error(err))
		return -1, false
	}
	key := versionedKey(prefix, version)
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("menu cache read failed", zap.String("key", key), zap.Error(err))
			return -1, false
		}
		return version, false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warn("failed to unmarshal cached menu", zap.String("key", key), zap.Error(err))
		return version, false
	}
	return version, true
}

// store writes under the given version only. Readers resolve the key from the
// current version, so a value written after an invalidation is never served.
func (c *RedisMenuCache) store(ctx context.Context, prefix string, version int64, value interface{}) {
	if version < 0 {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("failed to marshal menu for cache", zap.Error(err))
		return
	}
	key := versionedKey(prefix, version)
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache menu", zap.String("key", key), zap.Error(err))
	}
}

// Noop is used when no Redis endpoint is configured.
type Noop struct{}

func (Noop) Items(context.Context) ([]model.MenuItem, int64, bool) { return nil, -1, false }
func (Noop) StoreItems(context.Context, int64, []model.MenuItem) {}
func (Noop) Categories(context.Context) ([]string, int64, bool) { return nil, -1, false }
func (Noop) StoreCategories(context.Context, int64, []string) {}
func (Noop) Invalidate(context.Context) {}
