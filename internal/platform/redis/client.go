// Package redis constructs the shared go-redis client used by the bank
// directory cache. The client is optional: an empty URL means the service
// runs without a cache layer.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"fincode/internal/platform/config"
)

// New builds a redis client from cfg and verifies connectivity with a ping
// bounded by ctx. Returns (nil, nil) when no URL is configured.
func New(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
