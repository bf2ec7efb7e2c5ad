package bootstrap

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/infra/db"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresModule = fx.Module("postgres",
	fx.Provide(NewPostgresPool),
)

func NewPostgresPool(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, errs.Wrapf(err, "connect to %s:%s/%s", cfg.DB.Host, cfg.DB.Port, cfg.DB.DBName)
	}
	logger.Info("PostgreSQLに接続しました", "host", cfg.DB.Host, "database", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.StopHook(func(context.Context) error {
		stat := pool.Stat()
		logger.Info("PostgreSQL接続を閉じます", "acquired", stat.AcquiredConns(), "total", stat.TotalConns())
		closePool()
		return nil
	}))
	return pool, nil
}
