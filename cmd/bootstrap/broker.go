package bootstrap

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/infra/broker"
	"hotel-reservation/internal/infra/repository"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Invoke(StartOutboxRelay),
)

type RelayParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	UoW       shared.UnitOfWork
	Jobs      *repository.NotificationRepository
	Clock     clock.Clock
	Logger    *slog.Logger
}

// StartOutboxRelay leaves jobs queued in the database when AMQP_URL is unset.
// Invalid relay settings fail startup instead of the relay goroutine.
func StartOutboxRelay(p RelayParams) error {
	if p.Config.Broker.URL == "" {
		p.Logger.Info("AMQP_URL未設定: アウトボックスリレーを起動しません")
		return nil
	}
	if err := broker.ValidateRelayConfig(p.Config.Broker); err != nil {
		return err
	}

	publisher := broker.NewAMQPPublisher(p.Config.Broker.URL, p.Config.Broker.Queue)
	relay := broker.NewRelay(p.UoW, p.Jobs, publisher, p.Clock, p.Logger, p.Config.Broker)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			relay.Stop()
			return publisher.Close()
		},
	})
	return nil
}
