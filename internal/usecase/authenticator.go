package usecase

import (
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/pkg/jwt"
)

var ErrNotAccessToken = errs.New("refresh token presented as access token")

// Authenticator turns a bearer or cookie token into the acting user.
type Authenticator interface {
	Authenticate(token string) (user.Actor, error)
}

type jwtAuthenticator struct {
	jwtService *jwt.Service
}

func NewAuthenticator(jwtService *jwt.Service) Authenticator {
	return &jwtAuthenticator{jwtService: jwtService}
}

func (a *jwtAuthenticator) Authenticate(token string) (user.Actor, error) {
	claims, err := a.jwtService.ValidateToken(token)
	if err != nil {
		return user.Actor{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return user.Actor{}, errs.Mark(ErrNotAccessToken, jwt.ErrInvalidToken)
	}

	actor, err := user.NewActor(claims.UserID, claims.Role)
	if err != nil {
		return user.Actor{}, errs.Mark(err, jwt.ErrInvalidToken)
	}
	return actor, nil
}
