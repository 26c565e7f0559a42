package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RedisChartCache stores rendered charts in Redis with a fixed TTL.
type RedisChartCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisChartCache(client *redis.Client, ttl time.Duration) *RedisChartCache {
	if client == nil {
		panic("redis client is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisChartCache{client: client, ttl: ttl}
}

func (c *RedisChartCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached chart: %w", err)
	}
	return data, true, nil
}

func (c *RedisChartCache) Set(ctx context.Context, key string, png []byte) error {
	if err := c.client.Set(ctx, key, png, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache chart: %w", err)
	}
	return nil
}

func (c *RedisChartCache) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (c *RedisChartCache) Close() error {
	return c.client.Close()
}
