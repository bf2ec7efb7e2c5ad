package components

import (
	"hotel-reservation/internal/handler"
	"hotel-reservation/internal/handler/api"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewHealthHandler,
		middleware.NewAuthMiddleware,
		fx.Annotate(
			NewRateLimiter,
			fx.ResultTags(`name:"rateLimiter"`),
		),
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(cfg config.Config, rdb *redis.Client) gin.HandlerFunc {
	// A nil *redis.Client must not reach the limiter as a non-nil interface.
	if rdb == nil {
		return middleware.NewRateLimiter(cfg.RateLimit, nil)
	}
	return middleware.NewRateLimiter(cfg.RateLimit, rdb)
}
