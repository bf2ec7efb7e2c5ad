package repository

import (
	"context"
	"time"

	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	RecordNotificationJobFailure(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordNotificationJobFailureParams) error
}

// NotificationRepository is the outbox written by reservation commands and
// drained by the relay.
type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  JobStatusQueued,
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDue locks up to limit queued jobs whose run_at has passed. The locks
// hold until tx ends, so concurrent relays never pick the same job.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, limit int32) ([]*queries.NotificationJobView, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]*queries.NotificationJobView, len(rows))
	for i, row := range rows {
		jobs[i] = toNotificationJobView(row)
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

// RecordFailure reschedules the job at runAt, or parks it as failed once
// its attempts are exhausted.
func (r *NotificationRepository) RecordFailure(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, cause string, runAt time.Time, exhausted bool) error {
	status := JobStatusQueued
	if exhausted {
		status = JobStatusFailed
	}

	params := sqlc.RecordNotificationJobFailureParams{
		ID:        id,
		Status:    status,
		LastError: pgtype.Text{String: cause, Valid: true},
		RunAt:     pgconv.TimeToPgtype(runAt),
	}
	if err := r.queries.RecordNotificationJobFailure(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to record notification job failure", err)
	}
	return nil
}

func toNotificationJobView(row sqlc.NotificationJobs) *queries.NotificationJobView {
	return &queries.NotificationJobView{
		ID:        row.ID,
		Kind:      row.Kind,
		Topic:     row.Topic,
		Payload:   row.Payload,
		RunAt:     row.RunAt.Time,
		Attempts:  row.Attempts,
		Status:    row.Status,
		LastError: pgconv.StringPtrFromPgtype(row.LastError),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
