package reservation

import (
	"errors"
	"time"

	"hotel-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuests     = errors.New("guests must be greater than zero")
	ErrCapacityExceeded  = errors.New("guests exceed room capacity")
	ErrRoomHotelMismatch = errors.New("room does not belong to the hotel")
	ErrInvalidStatus     = errors.New("status must be one of active, cancelled, completed")
)

// RoomSpec is the slice of a room a new reservation is validated against.
type RoomSpec struct {
	ID       uuid.UUID
	HotelID  uuid.UUID
	Capacity int
}

type Services struct {
	Clock clock.Clock
}

type Reservation struct {
	id         uuid.UUID
	userID     uuid.UUID
	hotelID    uuid.UUID
	roomID     uuid.UUID
	stay       DateRange
	guests     int
	totalPrice Money
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(
	services *Services,
	userID, hotelID uuid.UUID,
	room RoomSpec,
	stay DateRange,
	guests int,
	totalPrice Money,
) (*Reservation, error) {
	if room.HotelID != hotelID {
		return nil, ErrRoomHotelMismatch
	}
	if guests <= 0 {
		return nil, ErrInvalidGuests
	}
	if guests > room.Capacity {
		return nil, ErrCapacityExceeded
	}

	now := services.Clock.Now()
	return &Reservation{
		id:         uuid.New(),
		userID:     userID,
		hotelID:    hotelID,
		roomID:     room.ID,
		stay:       stay,
		guests:     guests,
		totalPrice: totalPrice,
		status:     StatusActive,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReservation(
	id, userID, hotelID, roomID uuid.UUID,
	stay DateRange,
	guests int,
	totalPrice Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		userID:     userID,
		hotelID:    hotelID,
		roomID:     roomID,
		stay:       stay,
		guests:     guests,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ChangeStatus allows any transition between the known statuses.
func (r *Reservation) ChangeStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	r.status = status
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status.ConsumesInventory()
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) HotelID() uuid.UUID   { return r.hotelID }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) Stay() DateRange      { return r.stay }
func (r *Reservation) Guests() int          { return r.guests }
func (r *Reservation) TotalPrice() Money    { return r.totalPrice }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
