package request

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"guest@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
}

// RefreshRequest is only read when no refresh_token cookie was sent.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
