package cookie

import (
	"net/http"
	"time"

	"hotel-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	// RefreshTokenPath limits the refresh cookie to the auth endpoints.
	RefreshTokenPath = "/api/auth"
)

type tokenCookie struct {
	name  string
	value string
	path  string
	ttl   time.Duration
}

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration) {
	write(c, cfg,
		tokenCookie{name: AccessTokenCookieName, value: accessToken, path: "/", ttl: accessTTL},
		tokenCookie{name: RefreshTokenCookieName, value: refreshToken, path: RefreshTokenPath, ttl: refreshTTL},
	)
}

// ClearTokenCookies expires both cookies on the paths they were set with.
func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg,
		tokenCookie{name: AccessTokenCookieName, path: "/", ttl: -time.Second},
		tokenCookie{name: RefreshTokenCookieName, path: RefreshTokenPath, ttl: -time.Second},
	)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func write(c *gin.Context, cfg config.CookieConfig, cookies ...tokenCookie) {
	c.SetSameSite(sameSite(cfg.SameSite))
	for _, ck := range cookies {
		maxAge := int(ck.ttl.Seconds())
		if ck.ttl < 0 {
			maxAge = -1
		}
		c.SetCookie(ck.name, ck.value, maxAge, ck.path, cfg.Domain, cfg.Secure, true)
	}
}

func sameSite(v string) http.SameSite {
	switch v {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
