package readstore

import (
	"context"

	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type HotelManagerQueries interface {
	IsHotelManager(ctx context.Context, db sqlc.DBTX, arg sqlc.IsHotelManagerParams) (bool, error)
}

type HotelManagerReadStore struct {
	queries HotelManagerQueries
	db      sqlc.DBTX
}

func NewHotelManagerReadStore(queries HotelManagerQueries, db sqlc.DBTX) *HotelManagerReadStore {
	return &HotelManagerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HotelManagerReadStore) IsHotelManager(ctx context.Context, hotelID, userID uuid.UUID) (bool, error) {
	ok, err := r.queries.IsHotelManager(ctx, r.db, sqlc.IsHotelManagerParams{
		HotelID: hotelID,
		UserID:  userID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check hotel assignment", err)
	}
	return ok, nil
}
