package queries

import (
	"context"

	"hotel-reservation/internal/domain/availability"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut string) (*AvailabilityView, error)
	// FindAlternatives uses the configured default radius when daysRange is nil.
	FindAlternatives(ctx context.Context, roomID uuid.UUID, checkIn, checkOut string, daysRange *int) (*AlternativesView, error)
}

type AvailabilityReadStore interface {
	RoomInventory(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) (*RoomInventoryView, error)
	CountActiveOverlapping(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID, stay reservation.DateRange) (int, error)
	ListActiveInWindow(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID, window reservation.DateRange) ([]availability.Booking, error)
}

type availabilityQueriesImpl struct {
	uow           shared.UnitOfWork
	store         AvailabilityReadStore
	defaultRadius int
}

func NewAvailabilityQueries(uow shared.UnitOfWork, store AvailabilityReadStore, cfg config.Config) AvailabilityQueries {
	radius := cfg.Search.DefaultDaysRange
	if radius < 1 || radius > availability.MaxSearchRadius {
		radius = availability.DefaultSearchRadius
	}
	return &availabilityQueriesImpl{
		uow:           uow,
		store:         store,
		defaultRadius: radius,
	}
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut string) (*AvailabilityView, error) {
	stay, err := reservation.ParseDateRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var result availability.Result
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		room, err := q.store.RoomInventory(ctx, db, roomID)
		if err != nil {
			return mapRoomErr(err)
		}

		overlapping, err := q.store.CountActiveOverlapping(ctx, db, roomID, stay)
		if err != nil {
			return err
		}

		result = availability.Evaluate(int(room.AvailableRooms), overlapping)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AvailabilityView{
		RoomID:         roomID,
		CheckIn:        stay.CheckIn(),
		CheckOut:       stay.CheckOut(),
		Available:      result.Available,
		AvailableRooms: result.FreeUnits,
	}, nil
}

func (q *availabilityQueriesImpl) FindAlternatives(ctx context.Context, roomID uuid.UUID, checkIn, checkOut string, daysRange *int) (*AlternativesView, error) {
	stay, err := reservation.ParseDateRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	radius := q.defaultRadius
	if daysRange != nil {
		if radius, err = availability.ResolveRadius(daysRange); err != nil {
			return nil, errs.Mark(err, errs.ErrValidation)
		}
	}

	var bookings []availability.Booking
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		if _, err := q.store.RoomInventory(ctx, db, roomID); err != nil {
			return mapRoomErr(err)
		}

		var err error
		bookings, err = q.store.ListActiveInWindow(ctx, db, roomID, availability.SearchWindow(stay, radius))
		return err
	})
	if err != nil {
		return nil, err
	}

	alt, err := availability.FindAlternatives(stay, radius, bookings)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	return toAlternativesView(roomID, alt), nil
}

func toAlternativesView(roomID uuid.UUID, alt availability.Alternatives) *AlternativesView {
	view := &AlternativesView{
		RoomID:      roomID,
		Available:   alt.Available,
		Conflicts:   make([]ConflictView, 0, len(alt.Conflicts)),
		Suggestions: make([]SuggestionView, 0, len(alt.Suggestions)),
	}
	for _, c := range alt.Conflicts {
		view.Conflicts = append(view.Conflicts, ConflictView{
			ID:       c.ID,
			CheckIn:  c.Stay.CheckIn(),
			CheckOut: c.Stay.CheckOut(),
		})
	}
	for _, s := range alt.Suggestions {
		view.Suggestions = append(view.Suggestions, SuggestionView{
			CheckIn:        s.Stay.CheckIn(),
			CheckOut:       s.Stay.CheckOut(),
			DaysDifference: s.DaysDifference,
		})
	}
	return view
}

func mapRoomErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrRoomNotFound)
	}
	return err
}
