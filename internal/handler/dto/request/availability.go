package request

import "github.com/google/uuid"

type AvailabilityQuery struct {
	RoomID   string `form:"room_id" binding:"required,uuid"`
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
}

// ParsedRoomID is only safe after binding has validated RoomID.
func (q AvailabilityQuery) ParsedRoomID() uuid.UUID {
	return uuid.MustParse(q.RoomID)
}

// AlternativesQuery leaves DaysRange nil when absent so the configured default applies.
type AlternativesQuery struct {
	AvailabilityQuery
	DaysRange *int `form:"days_range"`
}
