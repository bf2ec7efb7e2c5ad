package readstore

import (
	"context"

	"hotel-reservation/internal/domain/availability"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	CountActiveOverlappingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.CountActiveOverlappingReservationsParams) (int64, error)
	ListActiveReservationsInWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationsInWindowParams) ([]sqlc.ListActiveReservationsInWindowRow, error)
}

// AvailabilityReadStore takes the DBTX per call so that the inventory and the
// bookings are read from the same snapshot.
type AvailabilityReadStore struct {
	queries AvailabilityQueries
}

func NewAvailabilityReadStore(queries AvailabilityQueries) *AvailabilityReadStore {
	return &AvailabilityReadStore{queries: queries}
}

func (s *AvailabilityReadStore) RoomInventory(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) (*queries.RoomInventoryView, error) {
	row, err := s.queries.GetRoomByID(ctx, db, roomID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}

	return &queries.RoomInventoryView{
		RoomID:         row.ID,
		HotelID:        row.HotelID,
		Capacity:       row.Capacity,
		AvailableRooms: row.AvailableRooms,
	}, nil
}

func (s *AvailabilityReadStore) CountActiveOverlapping(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID, stay reservation.DateRange) (int, error) {
	n, err := s.queries.CountActiveOverlappingReservations(ctx, db, sqlc.CountActiveOverlappingReservationsParams{
		RoomID:   roomID,
		CheckIn:  pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut: pgconv.DateToPgtype(stay.CheckOut()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping reservations", err)
	}
	return int(n), nil
}

func (s *AvailabilityReadStore) ListActiveInWindow(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID, window reservation.DateRange) ([]availability.Booking, error) {
	rows, err := s.queries.ListActiveReservationsInWindow(ctx, db, sqlc.ListActiveReservationsInWindowParams{
		RoomID:      roomID,
		WindowStart: pgconv.DateToPgtype(window.CheckIn()),
		WindowEnd:   pgconv.DateToPgtype(window.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations in window", err)
	}

	bookings := make([]availability.Booking, 0, len(rows))
	for _, row := range rows {
		stay, err := reservation.NewDateRange(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
		if err != nil {
			return nil, infra.WrapRepoErr("stored reservation has an invalid stay", err)
		}
		bookings = append(bookings, availability.Booking{ID: row.ID, Stay: stay})
	}
	return bookings, nil
}
