package repository

import (
	"context"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository/converter"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

var errReservationMissing = errs.New("reservation not found")

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params := converter.ReservationToInfra(res)

	resultID, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status reservation.Status, updatedAt time.Time) error {
	affected, err := r.queries.UpdateReservationStatus(ctx, tx, sqlc.UpdateReservationStatusParams{
		ID:        id,
		Status:    status.String(),
		UpdatedAt: pgconv.TimeToPgtype(updatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", errReservationMissing, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", errReservationMissing, infra.KindNotFound)
	}
	return nil
}
