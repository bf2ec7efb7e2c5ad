package uow

import (
	"context"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra/readstore"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type pgTx struct {
	uow   *PostgresUoW
	dbtx  sqlc.DBTX
	reads *commandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	return t.uow.reservations
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	return t.uow.notifications
}

func (t *pgTx) Users() shared.UserRepository {
	return t.uow.users
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = newCommandReads(t.uow.q, t.dbtx)
	}
	return t.reads
}

// commandReads runs against the transaction it was created from, so the
// availability count made while validating a booking shares the snapshot of
// the insert that follows.
type commandReads struct {
	dbtx         sqlc.DBTX
	availability *readstore.AvailabilityReadStore
	reservations *readstore.ReservationReadStore
	managers     *readstore.HotelManagerReadStore
}

func newCommandReads(q *sqlc.Queries, dbtx sqlc.DBTX) *commandReads {
	return &commandReads{
		dbtx:         dbtx,
		availability: readstore.NewAvailabilityReadStore(q),
		reservations: readstore.NewReservationReadStore(q, dbtx),
		managers:     readstore.NewHotelManagerReadStore(q, dbtx),
	}
}

func (r *commandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	room, err := r.availability.RoomInventory(ctx, r.dbtx, id)
	if err != nil {
		return nil, err
	}
	return &shared.RoomSnapshot{
		ID:             room.RoomID,
		HotelID:        room.HotelID,
		Capacity:       int(room.Capacity),
		AvailableRooms: int(room.AvailableRooms),
	}, nil
}

func (r *commandReads) CountActiveOverlapping(ctx context.Context, roomID uuid.UUID, stay reservation.DateRange) (int, error) {
	return r.availability.CountActiveOverlapping(ctx, r.dbtx, roomID, stay)
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	res, err := r.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ReservationSnapshot{
		ID:      res.ID,
		UserID:  res.UserID,
		HotelID: res.HotelID,
		RoomID:  res.RoomID,
		Status:  res.Status,
	}, nil
}

func (r *commandReads) IsHotelManager(ctx context.Context, hotelID, userID uuid.UUID) (bool, error) {
	return r.managers.IsHotelManager(ctx, hotelID, userID)
}
