package readstore

import (
	"context"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogQueries interface {
	ListHotels(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHotelsParams) ([]sqlc.Hotels, error)
	GetHotelByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Hotels, error)
	ListRoomsByHotelID(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]sqlc.Rooms, error)
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	SearchAvailableRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchAvailableRoomsParams) ([]sqlc.SearchAvailableRoomsRow, error)
}

type CatalogReadStore struct {
	queries CatalogQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *CatalogReadStore) ListHotels(ctx context.Context, filter queries.HotelFilter) ([]*queries.HotelView, error) {
	rows, err := s.queries.ListHotels(ctx, s.db, sqlc.ListHotelsParams{
		Location:  pgconv.StringPtrToPgtype(filter.Location),
		MinRating: pgconv.Float64PtrToPgtype(filter.MinRating),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}

	hotels := make([]*queries.HotelView, len(rows))
	for i, row := range rows {
		hotels[i] = toHotelView(row)
	}
	return hotels, nil
}

func (s *CatalogReadStore) FindHotelByID(ctx context.Context, id uuid.UUID) (*queries.HotelView, error) {
	row, err := s.queries.GetHotelByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel", err)
	}
	return toHotelView(row), nil
}

func (s *CatalogReadStore) ListRoomsByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.RoomView, error) {
	rows, err := s.queries.ListRoomsByHotelID(ctx, s.db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	rooms := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		rooms[i] = toRoomView(row)
	}
	return rooms, nil
}

func (s *CatalogReadStore) FindRoomByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := s.queries.GetRoomByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return toRoomView(row), nil
}

func (s *CatalogReadStore) SearchAvailableRooms(ctx context.Context, location *string, stay reservation.DateRange, minCapacity int32) ([]*queries.RoomSearchItem, error) {
	rows, err := s.queries.SearchAvailableRooms(ctx, s.db, sqlc.SearchAvailableRoomsParams{
		CheckIn:     pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:    pgconv.DateToPgtype(stay.CheckOut()),
		Location:    pgconv.StringPtrToPgtype(location),
		MinCapacity: minCapacity,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search available rooms", err)
	}

	items := make([]*queries.RoomSearchItem, len(rows))
	for i, row := range rows {
		items[i] = &queries.RoomSearchItem{
			RoomID:             row.ID,
			HotelID:            row.HotelID,
			HotelName:          row.HotelName,
			HotelLocation:      row.HotelLocation,
			HotelRating:        rating(row.HotelRating),
			RoomType:           row.RoomType,
			PricePerNightCents: row.PricePerNightCents,
			Capacity:           row.Capacity,
			FreeUnits:          row.FreeUnits,
		}
	}
	return items, nil
}

func toHotelView(row sqlc.Hotels) *queries.HotelView {
	return &queries.HotelView{
		ID:          row.ID,
		Name:        row.Name,
		Location:    row.Location,
		Description: pgconv.StringPtrFromPgtype(row.Description),
		Rating:      rating(row.Rating),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toRoomView(row sqlc.Rooms) *queries.RoomView {
	return &queries.RoomView{
		ID:                 row.ID,
		HotelID:            row.HotelID,
		RoomType:           row.RoomType,
		Description:        pgconv.StringPtrFromPgtype(row.Description),
		PricePerNightCents: row.PricePerNightCents,
		Capacity:           row.Capacity,
		AvailableRooms:     row.AvailableRooms,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

// rating drops values that do not fit a float64 rather than failing the read.
func rating(n pgtype.Numeric) *float64 {
	v, err := pgconv.Float64PtrFromNumeric(n)
	if err != nil {
		return nil
	}
	return v
}
