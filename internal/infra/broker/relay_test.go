//go:build unit

package broker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-reservation/internal/infra/broker"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"
	brokermock "hotel-reservation/tests/mock/broker"
	sharedmock "hotel-reservation/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type relayFixture struct {
	relay     *broker.Relay
	jobs      *brokermock.MockJobStore
	publisher *brokermock.MockPublisher
	clock     *clock.MockClock
}

func newRelayFixture(t *testing.T) relayFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	tx.EXPECT().DB().Return(nil).AnyTimes()
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()

	f := relayFixture{
		jobs:      brokermock.NewMockJobStore(ctrl),
		publisher: brokermock.NewMockPublisher(ctrl),
		clock:     clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	}
	cfg := config.BrokerConfig{RelayInterval: time.Second, RelayBatch: 10, MaxAttempts: 3}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.relay = broker.NewRelay(uow, f.jobs, f.publisher, f.clock, logger, cfg)
	return f
}

// confirmation is a settled broker answer.
type confirmation struct {
	acked bool
	err   error
}

func (c confirmation) WaitContext(context.Context) (bool, error) { return c.acked, c.err }

var acked = confirmation{acked: true}

// pending never settles, like a confirm lost with its connection.
type pending struct{}

func (pending) WaitContext(ctx context.Context) (bool, error) {
	<-ctx.Done()
	return false, ctx.Err()
}

func job(topic string, attempts int32) *queries.NotificationJobView {
	return &queries.NotificationJobView{
		ID:       uuid.New(),
		Kind:     "reservation",
		Topic:    topic,
		Payload:  []byte(`{"type":"` + topic + `"}`),
		Attempts: attempts,
		Status:   "queued",
	}
}

func TestRelay_RunOnce(t *testing.T) {
	t.Run("公開できたジョブは送信済みにする", func(t *testing.T) {
		f := newRelayFixture(t)
		a, b := job("reservation.created", 0), job("reservation.deleted", 0)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), int32(10)).Return([]*queries.NotificationJobView{a, b}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), broker.Message{ID: a.ID.String(), Topic: a.Topic, Payload: a.Payload}).Return(acked, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), broker.Message{ID: b.ID.String(), Topic: b.Topic, Payload: b.Payload}).Return(acked, nil)
		f.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), a.ID).Return(nil)
		f.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), b.ID).Return(nil)

		sent, err := f.relay.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, sent)
	})

	t.Run("公開失敗はバックオフして再試行に回す", func(t *testing.T) {
		f := newRelayFixture(t)
		j := job("reservation.created", 1)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*queries.NotificationJobView{j}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil, errors.New("channel closed"))
		f.jobs.EXPECT().RecordFailure(gomock.Any(), gomock.Any(), j.ID, "channel closed", f.clock.Now().Add(10*time.Second), false).Return(nil)

		sent, err := f.relay.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
	})

	t.Run("最大試行回数で打ち切る", func(t *testing.T) {
		f := newRelayFixture(t)
		j := job("reservation.created", 2)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*queries.NotificationJobView{j}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
		f.jobs.EXPECT().RecordFailure(gomock.Any(), gomock.Any(), j.ID, "connection reset", gomock.Any(), true).Return(nil)

		_, err := f.relay.RunOnce(context.Background())
		require.NoError(t, err)
	})

	t.Run("ブローカーがnackしたジョブは送信済みにしない", func(t *testing.T) {
		f := newRelayFixture(t)
		j := job("reservation.created", 0)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*queries.NotificationJobView{j}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(confirmation{acked: false}, nil)
		f.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.jobs.EXPECT().RecordFailure(gomock.Any(), gomock.Any(), j.ID, broker.ErrNacked.Error(), f.clock.Now().Add(5*time.Second), false).Return(nil)

		sent, err := f.relay.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
	})

	t.Run("確認待ちの失敗は送信済みにしない", func(t *testing.T) {
		f := newRelayFixture(t)
		j := job("reservation.status_changed", 0)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*queries.NotificationJobView{j}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(confirmation{err: errors.New("channel closed")}, nil)
		f.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.jobs.EXPECT().RecordFailure(gomock.Any(), gomock.Any(), j.ID, gomock.Any(), gomock.Any(), false).Return(nil)

		sent, err := f.relay.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
	})

	t.Run("確認が届かないまま中断されたら送信済みにしない", func(t *testing.T) {
		f := newRelayFixture(t)
		j := job("reservation.created", 0)
		ctx, cancel := context.WithCancel(context.Background())

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*queries.NotificationJobView{j}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, broker.Message) (broker.Confirmation, error) {
				cancel()
				return pending{}, nil
			})
		f.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.jobs.EXPECT().RecordFailure(gomock.Any(), gomock.Any(), j.ID, gomock.Any(), gomock.Any(), false).Return(nil)

		sent, err := f.relay.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
	})

	t.Run("取得失敗はエラーを返す", func(t *testing.T) {
		f := newRelayFixture(t)
		boom := errors.New("db down")
		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := f.relay.RunOnce(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}

func TestValidateRelayConfig(t *testing.T) {
	valid := config.BrokerConfig{RelayInterval: time.Second, RelayBatch: 10, MaxAttempts: 5}
	require.NoError(t, broker.ValidateRelayConfig(valid))

	tests := map[string]func(*config.BrokerConfig){
		"間隔がゼロ":     func(c *config.BrokerConfig) { c.RelayInterval = 0 },
		"間隔が負":      func(c *config.BrokerConfig) { c.RelayInterval = -time.Second },
		"バッチがゼロ":    func(c *config.BrokerConfig) { c.RelayBatch = 0 },
		"最大試行回数がゼロ": func(c *config.BrokerConfig) { c.MaxAttempts = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			mutate(&cfg)
			err := broker.ValidateRelayConfig(cfg)
			require.Error(t, err)
			assert.True(t, errs.Is(err, broker.ErrInvalidRelay))
		})
	}
}

func TestBackoff(t *testing.T) {
	tests := []struct {
		attempt int32
		want    time.Duration
	}{
		{1, 5 * time.Second},
		{2, 10 * time.Second},
		{3, 20 * time.Second},
		{7, 320 * time.Second},
		{8, 10 * time.Minute},
		{30, 10 * time.Minute},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, broker.Backoff(tt.attempt), "attempt %d", tt.attempt)
	}
}
