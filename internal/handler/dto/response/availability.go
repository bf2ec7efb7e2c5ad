package response

import (
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	RoomID         uuid.UUID `json:"room_id"`
	CheckIn        string    `json:"check_in"`
	CheckOut       string    `json:"check_out"`
	Available      bool      `json:"available"`
	AvailableRooms int       `json:"available_rooms"`
}

type ConflictResponse struct {
	ID       uuid.UUID `json:"id"`
	CheckIn  string    `json:"check_in"`
	CheckOut string    `json:"check_out"`
}

type SuggestionResponse struct {
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	DaysDifference int    `json:"days_difference"`
}

type AlternativesResponse struct {
	RoomID                  uuid.UUID            `json:"room_id"`
	Available               bool                 `json:"available"`
	ConflictingReservations []ConflictResponse   `json:"conflicting_reservations"`
	Suggestions             []SuggestionResponse `json:"suggestions"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomID:         v.RoomID,
		CheckIn:        v.CheckIn.Format(reservation.DateLayout),
		CheckOut:       v.CheckOut.Format(reservation.DateLayout),
		Available:      v.Available,
		AvailableRooms: v.AvailableRooms,
	}
}

func FromAlternativesView(v *queries.AlternativesView) *AlternativesResponse {
	resp := &AlternativesResponse{
		RoomID:                  v.RoomID,
		Available:               v.Available,
		ConflictingReservations: make([]ConflictResponse, 0, len(v.Conflicts)),
		Suggestions:             make([]SuggestionResponse, 0, len(v.Suggestions)),
	}
	for _, c := range v.Conflicts {
		resp.ConflictingReservations = append(resp.ConflictingReservations, ConflictResponse{
			ID:       c.ID,
			CheckIn:  c.CheckIn.Format(reservation.DateLayout),
			CheckOut: c.CheckOut.Format(reservation.DateLayout),
		})
	}
	for _, s := range v.Suggestions {
		resp.Suggestions = append(resp.Suggestions, SuggestionResponse{
			CheckIn:        s.CheckIn.Format(reservation.DateLayout),
			CheckOut:       s.CheckOut.Format(reservation.DateLayout),
			DaysDifference: s.DaysDifference,
		})
	}
	return resp
}
