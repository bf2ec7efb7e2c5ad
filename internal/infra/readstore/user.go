package readstore

import (
	"context"

	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

// UserReadStore serves authentication lookups. Missing rows surface as
// KindNotFound through WrapRepoErr's classification.
type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{queries: queries, db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return authorizedView(row), nil
}

// FindByEmail expects an already normalised address and returns inactive
// accounts too, so the caller can tell "inactive" from "wrong password".
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return authorizedView(row), row.PasswordHash, nil
}

func authorizedView(row sqlc.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		Name:     row.Name,
		Role:     row.Role,
		IsActive: row.IsActive,
	}
}
