package reservation

import (
	"hotel-reservation/internal/domain/user"

	"github.com/google/uuid"
)

// CanAccess decides whether actor may read or modify a reservation owned by
// ownerID. managesHotel must report whether the actor is assigned as manager
// of the reservation's hotel.
func CanAccess(actor user.Actor, ownerID uuid.UUID, managesHotel bool) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.ID == ownerID:
		return true
	case actor.IsHotelManager() && managesHotel:
		return true
	default:
		return false
	}
}
