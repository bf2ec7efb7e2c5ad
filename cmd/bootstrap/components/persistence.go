package components

import (
	"hotel-reservation/internal/infra/cache"
	"hotel-reservation/internal/infra/readstore"
	"hotel-reservation/internal/infra/repository"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/infra/uow"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	// sqlc.Queries satisfies every narrow query interface the stores depend on.
	fx.Annotate(
		NewSQLQueries,
		fx.As(new(readstore.UserReadQueries)),
		fx.As(new(readstore.ReservationViewQueries)),
		fx.As(new(readstore.HotelManagerQueries)),
		fx.As(new(readstore.AvailabilityQueries)),
		fx.As(new(repository.NotificationWriteQueries)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Reservation
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewHotelManagerReadStore,
			fx.As(new(queries.HotelManagerReadStore)),
		),
		// Availability
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		// Catalog
		NewCatalogReadStore,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Notification outbox drained by the relay
		repository.NewNotificationRepository,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

// NewCatalogReadStore puts the Redis read-through cache in front of the
// database store when a client is available.
func NewCatalogReadStore(q *sqlc.Queries, db sqlc.DBTX, rdb *redis.Client, cfg config.Config) queries.CatalogReadStore {
	store := readstore.NewCatalogReadStore(q, db)
	if rdb == nil {
		return store
	}
	return cache.NewCatalogReadStore(store, rdb, cfg.Redis.CachePrefix, cfg.Redis.CacheTTL)
}
