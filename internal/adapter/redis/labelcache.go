// Package redis provides a Redis-backed cache for resolved display labels.
// The cache sits in front of the live lookup; any Redis failure degrades to
// a miss so that label resolution never depends on cache availability.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/config"
	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/domain"
)

// LabelCache caches entity display labels under audit:label:<entity>:<id>.
type LabelCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// NewLabelCache connects to Redis and pings it for fail-fast validation.
func NewLabelCache(ctx context.Context, cfg config.RedisConfig, log *slog.Logger) (*LabelCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &LabelCache{
		client: client,
		ttl:    cfg.LabelTTL,
		log:    log.With("component", "label_cache"),
	}, nil
}

func key(entity domain.EntityName, id string) string {
	return fmt.Sprintf("audit:label:%s:%s", entity, id)
}

// Get returns a cached label. A Redis error is logged and reported as a miss.
func (c *LabelCache) Get(ctx context.Context, entity domain.EntityName, id string) (string, bool) {
	label, err := c.client.Get(ctx, key(entity, id)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.DebugContext(ctx, "cache get failed",
				slog.String("entity", entity.String()),
				slog.String("id", id),
				slog.String("error", err.Error()),
			)
		}
		return "", false
	}
	return label, true
}

// Set stores a label with the configured TTL. Errors are logged, not returned.
func (c *LabelCache) Set(ctx context.Context, entity domain.EntityName, id, label string) {
	if err := c.client.Set(ctx, key(entity, id), label, c.ttl).Err(); err != nil {
		c.log.DebugContext(ctx, "cache set failed",
			slog.String("entity", entity.String()),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
	}
}

// Close releases the underlying Redis connection.
func (c *LabelCache) Close() error {
	return c.client.Close()
}
