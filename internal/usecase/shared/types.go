package shared

import (
	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type RoomSnapshot struct {
	ID             uuid.UUID
	HotelID        uuid.UUID
	Capacity       int
	AvailableRooms int
}

type ReservationSnapshot struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	HotelID uuid.UUID
	RoomID  uuid.UUID
	Status  string
}
