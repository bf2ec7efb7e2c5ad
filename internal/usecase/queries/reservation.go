package queries

import (
	"context"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error)
	ListMine(ctx context.Context, actor user.Actor, after *Cursor, limit int) (*ReservationPage, error)
	// ListAll is only routed for admins.
	ListAll(ctx context.Context, after *Cursor, limit int) (*ReservationPage, error)
	ListByHotel(ctx context.Context, actor user.Actor, hotelID uuid.UUID, after *Cursor, limit int) (*ReservationPage, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *KeysetCursor, limit int32) ([]*ReservationView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID, after *KeysetCursor, limit int32) ([]*ReservationView, error)
	ListAll(ctx context.Context, after *KeysetCursor, limit int32) ([]*ReservationView, error)
}

type HotelManagerReadStore interface {
	IsHotelManager(ctx context.Context, hotelID, userID uuid.UUID) (bool, error)
}

type reservationQueriesImpl struct {
	store    ReservationReadStore
	managers HotelManagerReadStore
	catalog  CatalogReadStore
}

func NewReservationQueries(store ReservationReadStore, managers HotelManagerReadStore, catalog CatalogReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		store:    store,
		managers: managers,
		catalog:  catalog,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, err
	}

	manages, err := q.managesHotel(ctx, actor, view.HotelID)
	if err != nil {
		return nil, err
	}
	if !reservation.CanAccess(actor, view.UserID, manages) {
		return nil, errs.ErrUnauthorized
	}

	return view, nil
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, actor user.Actor, after *Cursor, limit int) (*ReservationPage, error) {
	return q.list(after, limit, func(cur *KeysetCursor, n int32) ([]*ReservationView, error) {
		return q.store.ListByUser(ctx, actor.ID, cur, n)
	})
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context, after *Cursor, limit int) (*ReservationPage, error) {
	return q.list(after, limit, func(cur *KeysetCursor, n int32) ([]*ReservationView, error) {
		return q.store.ListAll(ctx, cur, n)
	})
}

func (q *reservationQueriesImpl) ListByHotel(ctx context.Context, actor user.Actor, hotelID uuid.UUID, after *Cursor, limit int) (*ReservationPage, error) {
	if _, err := q.catalog.FindHotelByID(ctx, hotelID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrHotelNotFound)
		}
		return nil, err
	}

	if !actor.IsAdmin() {
		manages, err := q.managesHotel(ctx, actor, hotelID)
		if err != nil {
			return nil, err
		}
		if !manages {
			return nil, errs.ErrUnauthorized
		}
	}

	return q.list(after, limit, func(cur *KeysetCursor, n int32) ([]*ReservationView, error) {
		return q.store.ListByHotel(ctx, hotelID, cur, n)
	})
}

func (q *reservationQueriesImpl) list(after *Cursor, limit int, fetch func(*KeysetCursor, int32) ([]*ReservationView, error)) (*ReservationPage, error) {
	cur, err := decodeCursor(after)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	limit = ValidateLimit(limit)

	// #nosec G115 -- limit is bounded by MaxListLimit
	rows, err := fetch(cur, int32(limit+1))
	if err != nil {
		return nil, err
	}
	return pageOf(rows, limit), nil
}

// managesHotel only consults the assignment table for hotel managers.
func (q *reservationQueriesImpl) managesHotel(ctx context.Context, actor user.Actor, hotelID uuid.UUID) (bool, error) {
	if !actor.IsHotelManager() {
		return false, nil
	}
	return q.managers.IsHotelManager(ctx, hotelID, actor.ID)
}
