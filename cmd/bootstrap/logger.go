package bootstrap

import (
	"log/slog"

	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		func(cfg config.Config) *middleware.Logger { return middleware.NewLogger(cfg.Log) },
		func(l *middleware.Logger) *slog.Logger { return l.GetSlogLogger() },
	),
)

// WithSlogEvents routes fx's own lifecycle events through the application
// logger, demoted to debug so startup stays quiet at the default level.
var WithSlogEvents = fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: logger}
	l.UseLogLevel(slog.LevelDebug)
	return l
})
