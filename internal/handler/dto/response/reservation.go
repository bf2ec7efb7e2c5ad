package response

import (
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	HotelID       uuid.UUID `json:"hotel_id"`
	HotelName     string    `json:"hotel_name"`
	HotelLocation string    `json:"hotel_location"`
	RoomID        uuid.UUID `json:"room_id"`
	RoomType      string    `json:"room_type"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	Guests        int32     `json:"guests"`
	TotalPrice    float64   `json:"total_price"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	NextCursor   *string                `json:"next_cursor,omitempty"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            v.ID,
		UserID:        v.UserID,
		UserName:      v.UserName,
		UserEmail:     v.UserEmail,
		HotelID:       v.HotelID,
		HotelName:     v.HotelName,
		HotelLocation: v.HotelLocation,
		RoomID:        v.RoomID,
		RoomType:      v.RoomType,
		CheckIn:       v.CheckIn.Format(reservation.DateLayout),
		CheckOut:      v.CheckOut.Format(reservation.DateLayout),
		Guests:        v.Guests,
		TotalPrice:    centsToAmount(v.TotalCents),
		Status:        v.Status,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromReservationPage(page *queries.ReservationPage) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]*ReservationResponse, 0, len(page.Items)),
	}
	for _, item := range page.Items {
		resp.Reservations = append(resp.Reservations, FromReservationView(item))
	}
	if page.NextCursor != nil {
		next := page.NextCursor.After
		resp.NextCursor = &next
	}
	return resp
}

func centsToAmount(cents int64) float64 {
	return float64(cents) / 100.0
}
