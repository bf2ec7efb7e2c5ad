package repository

import (
	"context"

	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var errActiveUserMissing = errs.New("no active user with this id")

type UserWriteQueries interface {
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

// UserRepository only stamps logins; accounts are provisioned outside the API.
type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

// UpdateLastLogin reports KindNotFound when the account was deleted or
// deactivated between the credential check and this write.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	affected, err := r.queries.UpdateUserLastLogin(ctx, tx, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", errActiveUserMissing, infra.KindNotFound)
	}
	return nil
}
