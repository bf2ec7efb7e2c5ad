//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/pkg/cookie"
	"hotel-reservation/tests/common/dbtest"
	"hotel-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const loginURL = "/api/auth/login"

// LoginUser signs in through the API and returns the access token cookie value.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginURL,
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, access, "ログイン応答に access_token クッキーがない")
	require.NotEmpty(t, access.Value)
	return access.Value
}

// CreateAndLogin seeds an account with dbtest.TestPassword and signs it in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.TestPassword)
}
