package bootstrap

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/infra/cache"
	"hotel-reservation/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis may return a nil client; consumers fall back to uncached reads.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	client := cache.NewRedisClient(cfg.Redis)
	if client == nil {
		logger.Info("Redis無効: キャッシュとレート制限をスキップします")
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("Redisに接続しました", "addr", cfg.Redis.Addr)
	return client
}
