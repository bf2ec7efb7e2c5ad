package queries

import (
	"context"

	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserQueries interface {
	// GetCurrentUser resolves the caller of an authenticated request. A token
	// stays valid after its account is deactivated, so activity is rechecked here.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	// FindByEmail also returns the password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueries struct {
	users UserReadStore
}

func NewUserQueries(users UserReadStore) UserQueries {
	return &userQueries{users: users}
}

func (q *userQueries) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	account, err := q.users.FindByID(ctx, userID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Mark(err, ErrUserNotFound)
	case err != nil:
		return nil, errs.Wrap(err, "load current user")
	case !account.IsActive:
		return nil, ErrUserInactive
	}
	return account, nil
}
