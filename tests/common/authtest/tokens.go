//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Issuer signs tokens with the same secret the router validates against,
// without going through the login endpoint.
type Issuer struct {
	secret  string
	access  time.Duration
	refresh time.Duration
}

func NewIssuer(cfg config.JWTConfig) *Issuer {
	return &Issuer{secret: cfg.Secret, access: cfg.AccessTokenDuration, refresh: cfg.RefreshTokenDuration}
}

func (i *Issuer) Access(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(i.secret, i.access, i.refresh).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (i *Issuer) Refresh(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(i.secret, i.access, i.refresh).GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}

// Expired returns an access token whose exp is already a minute in the past.
func (i *Issuer) Expired(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(i.secret, -time.Minute, i.refresh).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
