package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	retryBase      = 5 * time.Second
	retryCap       = 10 * time.Minute
	confirmTimeout = 10 * time.Second
)

var (
	ErrNacked         = errs.New("broker nacked message")
	ErrInvalidRelay   = errs.New("invalid outbox relay settings")
	errConfirmTimeout = errs.New("publisher confirm not received")
)

type JobStore interface {
	ClaimDue(ctx context.Context, tx sqlc.DBTX, limit int32) ([]*queries.NotificationJobView, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	RecordFailure(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, cause string, runAt time.Time, exhausted bool) error
}

// Relay drains the notification_jobs outbox. Jobs are claimed with row locks
// inside one transaction per batch and only marked sent after the broker
// confirms them, so a crash or a lost frame leaves them to be published
// again (at-least-once).
type Relay struct {
	uow         shared.UnitOfWork
	jobs        JobStore
	publisher   Publisher
	clock       clock.Clock
	logger      *slog.Logger
	interval    time.Duration
	batch       int32
	maxAttempts int32

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRelay(
	uow shared.UnitOfWork,
	jobs JobStore,
	publisher Publisher,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.BrokerConfig,
) *Relay {
	return &Relay{
		uow:         uow,
		jobs:        jobs,
		publisher:   publisher,
		clock:       clk,
		logger:      logger,
		interval:    cfg.RelayInterval,
		batch:       cfg.RelayBatch,
		maxAttempts: cfg.MaxAttempts,
	}
}

// ValidateRelayConfig rejects settings the relay loop cannot run with.
func ValidateRelayConfig(cfg config.BrokerConfig) error {
	switch {
	case cfg.RelayInterval <= 0:
		return errs.Mark(errs.Newf("OUTBOX_RELAY_INTERVAL must be positive, got %s", cfg.RelayInterval), ErrInvalidRelay)
	case cfg.RelayBatch <= 0:
		return errs.Mark(errs.Newf("OUTBOX_RELAY_BATCH must be positive, got %d", cfg.RelayBatch), ErrInvalidRelay)
	case cfg.MaxAttempts <= 0:
		return errs.Mark(errs.Newf("OUTBOX_MAX_ATTEMPTS must be positive, got %d", cfg.MaxAttempts), ErrInvalidRelay)
	}
	return nil
}

func (r *Relay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
					r.logger.Error("outbox relay batch failed", "error", err.Error())
				}
			}
		}
	}()
}

func (r *Relay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

// RunOnce processes one batch and reports how many jobs were published.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		jobs, err := r.jobs.ClaimDue(ctx, tx.DB(), r.batch)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			pubErr := r.deliver(ctx, job)
			if pubErr == nil {
				if err := r.jobs.MarkSent(ctx, tx.DB(), job.ID); err != nil {
					return err
				}
				sent++
				continue
			}

			attempts := job.Attempts + 1
			exhausted := attempts >= r.maxAttempts
			runAt := r.clock.Now().Add(Backoff(attempts))
			r.logger.Warn("outbox publish failed",
				"job_id", job.ID,
				"topic", job.Topic,
				"attempt", attempts,
				"exhausted", exhausted,
				"error", pubErr.Error())

			if err := r.jobs.RecordFailure(ctx, tx.DB(), job.ID, pubErr.Error(), runAt, exhausted); err != nil {
				return err
			}
		}
		return nil
	})
	return sent, err
}

// deliver publishes one job and waits for the broker's ack.
func (r *Relay) deliver(ctx context.Context, job *queries.NotificationJobView) error {
	confirm, err := r.publisher.Publish(ctx, Message{ID: job.ID.String(), Topic: job.Topic, Payload: job.Payload})
	if err != nil {
		return err
	}

	waitCtx, cancel := context.WithTimeout(ctx, confirmTimeout)
	defer cancel()
	acked, err := confirm.WaitContext(waitCtx)
	switch {
	case errs.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		return errs.Mark(err, errConfirmTimeout)
	case err != nil:
		return errs.Wrap(err, "wait for publisher confirm")
	case !acked:
		return ErrNacked
	}
	return nil
}

// Backoff doubles from retryBase per attempt and stops growing at retryCap.
func Backoff(attempt int32) time.Duration {
	d := retryBase
	for i := int32(1); i < attempt; i++ {
		d *= 2
		if d >= retryCap {
			return retryCap
		}
	}
	return d
}
