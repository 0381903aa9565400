package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/canteen/internal/config"
	"github.com/polkiloo/canteen/internal/usecase"
)

// Module provides the menu cache. Without REDIS_URL the cache is a no-op.
var Module = fx.Provide(newMenuCache)

type cacheParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *zap.Logger
}

var newRedisClient = func(opts *redis.Options) redisClient {
	return redis.NewClient(opts)
}

func newMenuCache(p cacheParams) (usecase.MenuCache, error) {
	if p.Config.RedisURL == "" {
		return Noop{}, nil
	}

	opts, err := redis.ParseURL(p.Config.RedisURL)
	if err != nil {
		return nil, err
	}
	client := newRedisClient(opts)

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		p.Logger.Warn("redis unavailable, menu cache disabled", zap.Error(err))
		_ = client.Close()
		return Noop{}, nil
	}

	c := NewRedisMenuCache(client, p.Config.MenuCacheTTL, p.Logger.Named("cache"))
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return c.Close()
		},
	})
	p.Logger.Info("menu cache enabled", zap.Duration("ttl", p.Config.MenuCacheTTL))
	return c, nil
}
