package readstore

import (
	"context"

	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsParams) ([]sqlc.ListReservationsRow, error)
	ListReservationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByUserParams) ([]sqlc.ListReservationsByUserRow, error)
	ListReservationsByHotel(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByHotelParams) ([]sqlc.ListReservationsByHotelRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(row), nil
}

func (r *ReservationReadStore) ListAll(ctx context.Context, after *queries.KeysetCursor, limit int32) ([]*queries.ReservationView, error) {
	createdAt, id := keyset(after)
	rows, err := r.queries.ListReservations(ctx, r.db, sqlc.ListReservationsParams{
		CursorCreatedAt: createdAt,
		CursorID:        id,
		Limit:           limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = rowToReservationView(sqlc.GetReservationByIDRow(row))
	}
	return result, nil
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, after *queries.KeysetCursor, limit int32) ([]*queries.ReservationView, error) {
	createdAt, id := keyset(after)
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, sqlc.ListReservationsByUserParams{
		UserID:          userID,
		CursorCreatedAt: createdAt,
		CursorID:        id,
		Limit:           limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = rowToReservationView(sqlc.GetReservationByIDRow(row))
	}
	return result, nil
}

func (r *ReservationReadStore) ListByHotel(ctx context.Context, hotelID uuid.UUID, after *queries.KeysetCursor, limit int32) ([]*queries.ReservationView, error) {
	createdAt, id := keyset(after)
	rows, err := r.queries.ListReservationsByHotel(ctx, r.db, sqlc.ListReservationsByHotelParams{
		HotelID:         hotelID,
		CursorCreatedAt: createdAt,
		CursorID:        id,
		Limit:           limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by hotel", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = rowToReservationView(sqlc.GetReservationByIDRow(row))
	}
	return result, nil
}

// keyset maps a nil cursor to NULL parameters, which the list queries read as
// "first page".
func keyset(after *queries.KeysetCursor) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgconv.UUIDToPgtype(after.ID)
}

func rowToReservationView(row sqlc.GetReservationByIDRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:            row.ID,
		UserID:        row.UserID,
		UserName:      row.UserName,
		UserEmail:     row.UserEmail,
		HotelID:       row.HotelID,
		HotelName:     row.HotelName,
		HotelLocation: row.HotelLocation,
		RoomID:        row.RoomID,
		RoomType:      row.RoomType,
		CheckIn:       pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:      pgconv.DateFromPgtype(row.CheckOut),
		Guests:        row.Guests,
		TotalCents:    row.TotalPriceCents,
		Status:        row.Status,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
