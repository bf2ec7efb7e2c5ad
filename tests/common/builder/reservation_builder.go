//go:build unit || e2e

package builder

import (
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/user"
	reqdto "hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	Now         time.Time
	UserID      uuid.UUID
	HotelID     uuid.UUID
	RoomID      uuid.UUID
	RoomHotelID uuid.UUID
	Capacity    int
	Guests      int
	CheckIn     string
	CheckOut    string
	TotalPrice  float64
	Status      string
}

func NewReservationBuilder() *ReservationBuilder {
	hotelID := uuid.New()
	return &ReservationBuilder{
		Now:         time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
		UserID:      uuid.New(),
		HotelID:     hotelID,
		RoomID:      uuid.New(),
		RoomHotelID: hotelID,
		Capacity:    2,
		Guests:      2,
		CheckIn:     "2025-06-10",
		CheckOut:    "2025-06-15",
		TotalPrice:  750.00,
		Status:      "active",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	stay, err := reservation.ParseDateRange(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	price, err := reservation.NewMoneyFromAmount(b.TotalPrice)
	if err != nil {
		return nil, err
	}

	services := &reservation.Services{Clock: clock.NewMockClock(b.Now)}
	room := reservation.RoomSpec{ID: b.RoomID, HotelID: b.RoomHotelID, Capacity: b.Capacity}
	return reservation.NewReservation(services, b.UserID, b.HotelID, room, stay, b.Guests, price)
}

// BuildActor is the guest who owns the reservation.
func (b *ReservationBuilder) BuildActor() user.Actor {
	return user.Actor{ID: b.UserID, Role: user.RoleUser}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		HotelID:    b.HotelID,
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
	}
}

func (b *ReservationBuilder) BuildCreateInput() commands.CreateReservationInput {
	return b.BuildCreateRequestDTO().ToInput()
}

// BuildView panics on malformed dates; it is meant for fixtures only.
func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	stay, err := reservation.ParseDateRange(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return &queries.ReservationView{
		ID:            uuid.New(),
		UserID:        b.UserID,
		UserName:      "Test User",
		UserEmail:     "test@example.com",
		HotelID:       b.HotelID,
		HotelName:     "Seaside Resort",
		HotelLocation: "Okinawa",
		RoomID:        b.RoomID,
		RoomType:      "Deluxe Twin",
		CheckIn:       stay.CheckIn(),
		CheckOut:      stay.CheckOut(),
		// #nosec G115 -- test fixture values are small
		Guests:     int32(b.Guests),
		TotalCents: int64(b.TotalPrice * 100),
		Status:     b.Status,
		CreatedAt:  b.Now,
		UpdatedAt:  b.Now,
	}
}
