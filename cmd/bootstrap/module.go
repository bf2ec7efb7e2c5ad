package bootstrap

import (
	"hotel-reservation/cmd/bootstrap/components"
	"hotel-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

// Module is the whole server graph. Tests assemble a subset of it around
// their own pool and config.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	WithSlogEvents,
	PostgresModule,
	JWTModule,
	CacheModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	BrokerModule,
)
