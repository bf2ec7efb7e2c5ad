package commands

import (
	"context"
	"encoding/json"
	"time"

	"hotel-reservation/internal/domain/availability"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	reservationEventKind = "reservation"

	TopicReservationCreated       = "reservation.created"
	TopicReservationStatusChanged = "reservation.status_changed"
	TopicReservationDeleted       = "reservation.deleted"
)

type CreateReservationInput struct {
	HotelID    uuid.UUID
	RoomID     uuid.UUID
	CheckIn    string
	CheckOut   string
	Guests     int
	TotalPrice float64
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput, actor user.Actor) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, actor user.Actor) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID, actor user.Actor) error
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	services  *reservation.Services
	readStore queries.ReservationReadStore
	clock     clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	services *reservation.Services,
	readStore queries.ReservationReadStore,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		services:  services,
		readStore: readStore,
		clock:     services.Clock,
	}
}

// reservationEvent is the outbox payload published for every lifecycle change.
type reservationEvent struct {
	Type          string    `json:"type"`
	ReservationID uuid.UUID `json:"reservation_id"`
	UserID        uuid.UUID `json:"user_id"`
	HotelID       uuid.UUID `json:"hotel_id"`
	RoomID        uuid.UUID `json:"room_id"`
	CheckIn       string    `json:"check_in,omitempty"`
	CheckOut      string    `json:"check_out,omitempty"`
	Status        string    `json:"status,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (uc *reservationCommandsImpl) Create(ctx context.Context, in CreateReservationInput, actor user.Actor) (*queries.ReservationView, error) {
	if in.HotelID == uuid.Nil || in.RoomID == uuid.Nil {
		return nil, errs.Mark(errs.New("hotel_id and room_id are required"), errs.ErrValidation)
	}
	stay, err := reservation.ParseDateRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	price, err := reservation.NewMoneyFromAmount(in.TotalPrice)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, err := tx.Reads().RoomByID(ctx, in.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrRoomNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		spec := reservation.RoomSpec{ID: room.ID, HotelID: room.HotelID, Capacity: room.Capacity}
		res, err := reservation.NewReservation(uc.services, actor.ID, in.HotelID, spec, stay, in.Guests, price)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}

		overlapping, err := tx.Reads().CountActiveOverlapping(ctx, room.ID, stay)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !availability.Evaluate(room.AvailableRooms, overlapping).Available {
			return errs.ErrNoAvailability
		}

		id, err := tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		createdID = id

		return uc.enqueueEvent(ctx, tx, TopicReservationCreated, reservationEvent{
			ReservationID: id,
			UserID:        res.UserID(),
			HotelID:       res.HotelID(),
			RoomID:        res.RoomID(),
			CheckIn:       stay.CheckIn().Format(reservation.DateLayout),
			CheckOut:      stay.CheckOut().Format(reservation.DateLayout),
			Status:        res.Status().String(),
		})
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: Get the complete reservation view from read store
	view, err := uc.readStore.FindByID(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *reservationCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string, actor user.Actor) (*queries.ReservationView, error) {
	next, err := reservation.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := uc.authorizedSnapshot(ctx, tx.Reads(), id, actor)
		if err != nil {
			return err
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), id, next, uc.clock.Now()); err != nil {
			return mapReservationWriteErr(err)
		}

		return uc.enqueueEvent(ctx, tx, TopicReservationStatusChanged, reservationEvent{
			ReservationID: id,
			UserID:        snap.UserID,
			HotelID:       snap.HotelID,
			RoomID:        snap.RoomID,
			Status:        next.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actor user.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := uc.authorizedSnapshot(ctx, tx.Reads(), id, actor)
		if err != nil {
			return err
		}

		if err := tx.Reservations().Delete(ctx, tx.DB(), id); err != nil {
			return mapReservationWriteErr(err)
		}

		return uc.enqueueEvent(ctx, tx, TopicReservationDeleted, reservationEvent{
			ReservationID: id,
			UserID:        snap.UserID,
			HotelID:       snap.HotelID,
			RoomID:        snap.RoomID,
		})
	})
}

func (uc *reservationCommandsImpl) authorizedSnapshot(
	ctx context.Context,
	reads shared.CommandReads,
	id uuid.UUID,
	actor user.Actor,
) (*shared.ReservationSnapshot, error) {
	snap, err := reads.ReservationByID(ctx, id)
	if err != nil {
		return nil, mapReservationWriteErr(err)
	}

	manages := false
	if actor.IsHotelManager() {
		manages, err = reads.IsHotelManager(ctx, snap.HotelID, actor.ID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	if !reservation.CanAccess(actor, snap.UserID, manages) {
		return nil, errs.ErrUnauthorized
	}
	return snap, nil
}

func (uc *reservationCommandsImpl) enqueueEvent(ctx context.Context, tx shared.Tx, topic string, event reservationEvent) error {
	now := uc.clock.Now()
	event.Type = topic
	event.OccurredAt = now

	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation event")
	}

	if err := tx.Notifications().CreateJob(ctx, tx.DB(), reservationEventKind, topic, payload, now); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func mapReservationWriteErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrReservationNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
