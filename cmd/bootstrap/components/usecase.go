package components

import (
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

// UseCaseModule wires the read side, the write side and request
// authentication on top of the persistence module.
var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		newReservationServices,
		usecase.NewAuthenticator,
	),
	fx.Module("usecase/queries",
		fx.Provide(
			queries.NewUserQueries,
			queries.NewCatalogQueries,
			queries.NewAvailabilityQueries,
			queries.NewReservationQueries,
		),
	),
	fx.Module("usecase/commands",
		fx.Provide(
			commands.NewAuthCommands,
			commands.NewReservationCommands,
		),
	),
)

func newReservationServices(c clock.Clock) *reservation.Services {
	return &reservation.Services{Clock: c}
}
