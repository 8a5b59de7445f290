package bankdir

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"fincode/pkg/bic"
	"fincode/pkg/registry"
)

// Cache is a read-through decorator over another directory. Hits are served
// from Redis; misses fall through to the inner directory and the result is
// written back with a TTL. Cache failures never fail the lookup, the inner
// directory remains the source of truth.
type Cache struct {
	inner  bic.Directory
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCache(inner bic.Directory, client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *Cache) BankEntries(ctx context.Context, countryCode, bankCode string) ([]bic.BankEntry, error) {
	key := "bankdir:bank:" + registry.Normalize(countryCode) + ":" + registry.Normalize(bankCode)
	return c.lookup(ctx, key, func(ctx context.Context) ([]bic.BankEntry, error) {
		return c.inner.BankEntries(ctx, countryCode, bankCode)
	})
}

func (c *Cache) EntriesByBIC(ctx context.Context, code string) ([]bic.BankEntry, error) {
	key := "bankdir:bic:" + expand(registry.Normalize(code))
	return c.lookup(ctx, key, func(ctx context.Context) ([]bic.BankEntry, error) {
		return c.inner.EntriesByBIC(ctx, code)
	})
}

func (c *Cache) lookup(ctx context.Context, key string, load func(context.Context) ([]bic.BankEntry, error)) ([]bic.BankEntry, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var entries []bic.BankEntry
		if err := json.Unmarshal(payload, &entries); err == nil {
			return entries, nil
		}
		// Corrupt payload, treat as a miss and overwrite below.
		c.logger.WarnContext(ctx, "bankdir cache payload unreadable", "key", key)
	case err != redis.Nil:
		c.logger.WarnContext(ctx, "bankdir cache read failed", "key", key, "error", err)
	}

	entries, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(entries); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.WarnContext(ctx, "bankdir cache write failed", "key", key, "error", err)
		}
	}
	return entries, nil
}
