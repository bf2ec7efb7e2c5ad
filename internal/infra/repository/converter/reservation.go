package converter

import (
	"math"

	"hotel-reservation/internal/domain/reservation"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	guests := res.Guests()
	if guests > math.MaxInt32 {
		guests = math.MaxInt32
	}

	return sqlc.CreateReservationParams{
		ID:       res.ID(),
		UserID:   res.UserID(),
		HotelID:  res.HotelID(),
		RoomID:   res.RoomID(),
		CheckIn:  pgconv.DateToPgtype(res.Stay().CheckIn()),
		CheckOut: pgconv.DateToPgtype(res.Stay().CheckOut()),
		// #nosec G115 -- clamped above
		Guests:          int32(guests),
		TotalPriceCents: res.TotalPrice().Cents(),
		Status:          res.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}
