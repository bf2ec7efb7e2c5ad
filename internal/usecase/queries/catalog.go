package queries

import (
	"context"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidGuests = errs.New("guests must be a positive integer")

type CatalogQueries interface {
	ListHotels(ctx context.Context, filter HotelFilter) ([]*HotelView, error)
	GetHotel(ctx context.Context, id uuid.UUID) (*HotelView, error)
	ListRooms(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, error)
	SearchAvailableRooms(ctx context.Context, search RoomSearch) ([]*RoomSearchItem, error)
}

type CatalogReadStore interface {
	ListHotels(ctx context.Context, filter HotelFilter) ([]*HotelView, error)
	FindHotelByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	ListRoomsByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error)
	FindRoomByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	SearchAvailableRooms(ctx context.Context, location *string, stay reservation.DateRange, minCapacity int32) ([]*RoomSearchItem, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListHotels(ctx context.Context, filter HotelFilter) ([]*HotelView, error) {
	if filter.MinRating != nil && (*filter.MinRating < 0 || *filter.MinRating > 5) {
		return nil, errs.Mark(errs.New("min_rating must be between 0 and 5"), errs.ErrValidation)
	}
	return q.store.ListHotels(ctx, filter)
}

func (q *catalogQueriesImpl) GetHotel(ctx context.Context, id uuid.UUID) (*HotelView, error) {
	hotel, err := q.store.FindHotelByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrHotelNotFound)
		}
		return nil, err
	}
	return hotel, nil
}

func (q *catalogQueriesImpl) ListRooms(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error) {
	if _, err := q.GetHotel(ctx, hotelID); err != nil {
		return nil, err
	}
	return q.store.ListRoomsByHotel(ctx, hotelID)
}

func (q *catalogQueriesImpl) GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	room, err := q.store.FindRoomByID(ctx, id)
	if err != nil {
		return nil, mapRoomErr(err)
	}
	return room, nil
}

func (q *catalogQueriesImpl) SearchAvailableRooms(ctx context.Context, search RoomSearch) ([]*RoomSearchItem, error) {
	stay, err := reservation.ParseDateRange(search.CheckIn, search.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	guests := search.Guests
	if guests == 0 {
		guests = 1
	}
	if guests < 0 {
		return nil, errs.Mark(ErrInvalidGuests, errs.ErrValidation)
	}

	// #nosec G115 -- guests comes from a bounded query parameter
	return q.store.SearchAvailableRooms(ctx, search.Location, stay, int32(guests))
}
