package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"hotel-reservation/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

// RetryPolicy bounds how often a transaction aborted by PostgreSQL for
// serialization or deadlock reasons is run again.
type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
	Cap        time.Duration
}

var DefaultRetryPolicy = RetryPolicy{
	MaxRetries: 3,
	Base:       100 * time.Millisecond,
	Cap:        2 * time.Second,
}

// Backoff is Base·2^retry plus up to 20% jitter, never above Cap.
func (p RetryPolicy) Backoff(retry int) time.Duration {
	wait := p.Base << retry
	if wait <= 0 || wait > p.Cap {
		wait = p.Cap
	}
	if j := int64(wait / 5); j > 0 {
		wait += time.Duration(rand.Int64N(j))
	}
	return min(wait, p.Cap)
}

// Do calls attempt until it succeeds, fails with a non-retryable error, or
// has been retried MaxRetries times. The last case is marked with
// errMaxRetriesExceeded.
func (p RetryPolicy) Do(ctx context.Context, isolation string, attempt func() error) error {
	for retry := 0; ; retry++ {
		err := attempt()
		if err == nil || !isRetryable(err) {
			return err
		}
		if retry == p.MaxRetries {
			slog.Error("transaction failed after max retries",
				"isolation", isolation,
				"attempts", retry+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := p.Backoff(retry)
		slog.Warn("retrying transaction",
			"isolation", isolation,
			"attempt", retry+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}
