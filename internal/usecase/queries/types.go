package queries

import (
	"time"

	"github.com/google/uuid"
)

type HotelView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description *string   `json:"description,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RoomView struct {
	ID                 uuid.UUID `json:"id"`
	HotelID            uuid.UUID `json:"hotel_id"`
	RoomType           string    `json:"room_type"`
	Description        *string   `json:"description,omitempty"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	Capacity           int32     `json:"capacity"`
	AvailableRooms     int32     `json:"available_rooms"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type RoomSearchItem struct {
	RoomID             uuid.UUID `json:"room_id"`
	HotelID            uuid.UUID `json:"hotel_id"`
	HotelName          string    `json:"hotel_name"`
	HotelLocation      string    `json:"hotel_location"`
	HotelRating        *float64  `json:"hotel_rating,omitempty"`
	RoomType           string    `json:"room_type"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	Capacity           int32     `json:"capacity"`
	FreeUnits          int32     `json:"free_units"`
}

type HotelFilter struct {
	Location  *string
	MinRating *float64
}

type RoomSearch struct {
	Location *string
	CheckIn  string
	CheckOut string
	Guests   int
}

// ReservationView is a reservation joined with its hotel, room and guest.
type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	HotelID       uuid.UUID `json:"hotel_id"`
	HotelName     string    `json:"hotel_name"`
	HotelLocation string    `json:"hotel_location"`
	RoomID        uuid.UUID `json:"room_id"`
	RoomType      string    `json:"room_type"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	Guests        int32     `json:"guests"`
	TotalCents    int64     `json:"total_price_cents"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReservationPage struct {
	Items      []*ReservationView
	NextCursor *Cursor
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type RoomInventoryView struct {
	RoomID         uuid.UUID
	HotelID        uuid.UUID
	Capacity       int32
	AvailableRooms int32
}

type AvailabilityView struct {
	RoomID         uuid.UUID `json:"room_id"`
	CheckIn        time.Time `json:"check_in"`
	CheckOut       time.Time `json:"check_out"`
	Available      bool      `json:"available"`
	AvailableRooms int       `json:"available_rooms"`
}

type ConflictView struct {
	ID       uuid.UUID `json:"id"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

type SuggestionView struct {
	CheckIn        time.Time `json:"check_in"`
	CheckOut       time.Time `json:"check_out"`
	DaysDifference int       `json:"days_difference"`
}

type AlternativesView struct {
	RoomID      uuid.UUID        `json:"room_id"`
	Available   bool             `json:"available"`
	Conflicts   []ConflictView   `json:"conflicting_reservations"`
	Suggestions []SuggestionView `json:"suggestions"`
}

type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
