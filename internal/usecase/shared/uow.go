package shared

import (
	"context"
	"time"

	"hotel-reservation/internal/domain/reservation"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

// UnitOfWork scopes repository calls to one PostgreSQL transaction. The
// transactional variants retry fn on serialization failures and deadlocks,
// so fn must not have side effects outside tx.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable is used where two writers could both pass an
	// availability check that only one of them may act on.
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB runs fn on the pool without opening a transaction.
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads serves the lookups a command validates against before it
	// decides whether a transaction is needed at all.
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	CountActiveOverlapping(ctx context.Context, roomID uuid.UUID, stay reservation.DateRange) (int, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	IsHotelManager(ctx context.Context, hotelID, userID uuid.UUID) (bool, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	// UpdateStatus and Delete report KindNotFound when no row matched.
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status reservation.Status, updatedAt time.Time) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
