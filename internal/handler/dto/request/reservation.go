package request

import (
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	HotelID    uuid.UUID `json:"hotel_id" binding:"required"`
	RoomID     uuid.UUID `json:"room_id" binding:"required"`
	CheckIn    string    `json:"check_in" binding:"required"`
	CheckOut   string    `json:"check_out" binding:"required"`
	Guests     int       `json:"guests" binding:"required,gt=0"`
	TotalPrice float64   `json:"total_price" binding:"required,gt=0"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		HotelID:    r.HotelID,
		RoomID:     r.RoomID,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Guests:     r.Guests,
		TotalPrice: r.TotalPrice,
	}
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active cancelled completed"`
}

type ListReservationsQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
}

func (q ListReservationsQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}
