package response

import (
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func FromAuthorizedUser(v *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:    v.ID,
		Email: v.Email,
		Name:  v.Name,
		Role:  v.Role,
	}
}
