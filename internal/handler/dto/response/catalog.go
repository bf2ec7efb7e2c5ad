package response

import (
	"time"

	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HotelResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description *string   `json:"description,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RoomResponse struct {
	ID             uuid.UUID `json:"id"`
	HotelID        uuid.UUID `json:"hotel_id"`
	RoomType       string    `json:"room_type"`
	Description    *string   `json:"description,omitempty"`
	PricePerNight  float64   `json:"price_per_night" copier:"-"`
	Capacity       int32     `json:"capacity"`
	AvailableRooms int32     `json:"available_rooms"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RoomSearchResponse struct {
	RoomID        uuid.UUID `json:"room_id"`
	HotelID       uuid.UUID `json:"hotel_id"`
	HotelName     string    `json:"hotel_name"`
	HotelLocation string    `json:"hotel_location"`
	HotelRating   *float64  `json:"hotel_rating,omitempty"`
	RoomType      string    `json:"room_type"`
	PricePerNight float64   `json:"price_per_night" copier:"-"`
	Capacity      int32     `json:"capacity"`
	FreeUnits     int32     `json:"available_rooms"`
}

func FromHotelView(v *queries.HotelView) (*HotelResponse, error) {
	var resp HotelResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromHotelViews(vs []*queries.HotelView) ([]HotelResponse, error) {
	resp := make([]HotelResponse, 0, len(vs))
	if err := copier.Copy(&resp, &vs); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var resp RoomResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	resp.PricePerNight = centsToAmount(v.PricePerNightCents)
	return &resp, nil
}

func FromRoomViews(vs []*queries.RoomView) ([]RoomResponse, error) {
	resp := make([]RoomResponse, 0, len(vs))
	for _, v := range vs {
		r, err := FromRoomView(v)
		if err != nil {
			return nil, err
		}
		resp = append(resp, *r)
	}
	return resp, nil
}

func FromRoomSearchItems(items []*queries.RoomSearchItem) ([]RoomSearchResponse, error) {
	resp := make([]RoomSearchResponse, 0, len(items))
	for _, item := range items {
		var r RoomSearchResponse
		if err := copier.Copy(&r, item); err != nil {
			return nil, err
		}
		r.PricePerNight = centsToAmount(item.PricePerNightCents)
		resp = append(resp, r)
	}
	return resp, nil
}
