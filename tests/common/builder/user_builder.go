//go:build unit || e2e

package builder

import (
	"time"

	"hotel-reservation/internal/domain/user"
	reqdto "hotel-reservation/internal/handler/dto/request"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// UserBuilder describes one guest account. Each Build method renders it
// for a different layer, so one fixture can drive store, usecase and handler tests.
type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Password     string
	PasswordHash string
	Role         user.Role
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "guest@example.com",
		Name:         "Guest User",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Role:         user.RoleUser,
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = user.Role(role)
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return sqlc.Users{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		IsActive:     u.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: created, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: created, Valid: true},
	}
}

func (u *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildActor() user.Actor {
	return user.Actor{ID: u.ID, Role: u.Role}
}

// BuildLogin is the body a client would post to sign this account in.
func (u *UserBuilder) BuildLogin() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: u.Email, Password: u.Password}
}
