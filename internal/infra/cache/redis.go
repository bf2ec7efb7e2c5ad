package cache

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when Redis is not configured or does not answer
// the ping; callers treat a nil client as "cache and rate limiting off".
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, continuing without cache", "addr", cfg.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}

	return client
}
