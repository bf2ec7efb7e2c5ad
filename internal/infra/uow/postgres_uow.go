package uow

import (
	"context"
	"errors"
	"log/slog"

	"hotel-reservation/internal/infra/repository"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry RetryPolicy

	reservations  *repository.ReservationRepository
	notifications *repository.NotificationRepository
	users         *repository.UserRepository
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool:          pool,
		q:             q,
		retry:         DefaultRetryPolicy,
		reservations:  repository.NewReservationRepository(q),
		notifications: repository.NewNotificationRepository(q),
		users:         repository.NewUserRepository(q),
	}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// WithinSerializable makes two concurrent check-then-insert runs on the same
// room conflict; the loser is retried and then sees the winner's row.
func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// WithinReadOnly runs every statement of fn against one snapshot.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx, "read-only")

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

func (u *PostgresUoW) run(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.retry.Do(ctx, string(opts.IsoLevel), func() error {
		return u.attempt(ctx, opts, fn)
	})
}

// attempt owns one pgx transaction; rollback after a commit is a no-op.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx, string(opts.IsoLevel))

	if err := fn(ctx, &pgTx{uow: u, dbtx: pgxTx}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx, label string) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "tx", label, "error", err.Error())
	}
}
