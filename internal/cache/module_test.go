package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/polkiloo/canteen/internal/config"
	testhelpers "github.com/polkiloo/canteen/internal/test"
)

func TestNewMenuCacheWithoutRedis(t *testing.T) {
	c, err := newMenuCache(cacheParams{
		Lifecycle: &testhelpers.LifecycleRecorder{},
		Config:    &config.Config{},
		Logger:    zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.(Noop); !ok {
		t.Fatalf("expected noop cache, got %T", c)
	}
}

func TestNewMenuCacheInvalidURL(t *testing.T) {
	_, err := newMenuCache(cacheParams{
		Lifecycle: &testhelpers.LifecycleRecorder{},
		Config:    &config.Config{RedisURL: "not a url"},
		Logger:    zap.NewNop(),
	})
	if err == nil {
		t.Fatal("expected error for malformed redis url")
	}
}

func TestNewMenuCacheWithRedis(t *testing.T) {
	fake := newFakeRedis()
	t.Cleanup(func() {
		newRedisClient = func(opts *redis.Options) redisClient { return redis.NewClient(opts) }
	})
	var gotAddr string
	newRedisClient = func(opts *redis.Options) redisClient {
		gotAddr = opts.Addr
		return fake
	}

	recorder := &testhelpers.LifecycleRecorder{}
	c, err := newMenuCache(cacheParams{
		Lifecycle: recorder,
		Config:    &config.Config{RedisURL: "redis://cache.local:6379/0", MenuCacheTTL: time.Minute},
		Logger:    zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.(*RedisMenuCache); !ok {
		t.Fatalf("expected redis cache, got %T", c)
	}
	if gotAddr != "cache.local:6379" {
		t.Fatalf("unexpected redis address %q", gotAddr)
	}
	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected close hook, got %d", len(recorder.Hooks))
	}
	if err := recorder.Hooks[0].OnStop(context.Background()); err != nil || !fake.closed {
		t.Fatalf("expected client closed on stop, err=%v", err)
	}
}

func TestNewMenuCacheFallsBackWhenPingFails(t *testing.T) {
	fake := newFakeRedis()
	fake.pingErr = errors.New("dial tcp: refused")
	t.Cleanup(func() {
		newRedisClient = func(opts *redis.Options) redisClient { return redis.NewClient(opts) }
	})
	newRedisClient = func(*redis.Options) redisClient { return fake }

	c, err := newMenuCache(cacheParams{
		Lifecycle: &testhelpers.LifecycleRecorder{},
		Config:    &config.Config{RedisURL: "redis://cache.local:6379/0"},
		Logger:    zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.(Noop); !ok {
		t.Fatalf("expected noop fallback, got %T", c)
	}
	if !fake.closed {
		t.Fatal("expected client to be closed after failed ping")
	}
}
