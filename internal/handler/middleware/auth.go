package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/pkg/cookie"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	authenticator usecase.Authenticator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

var (
	errTokenRequired    = errs.New("access token required")
	errInsufficientRole = errs.New("insufficient role")
	errActorMissing     = errs.New("role checked before authentication")
	roleHierarchy       = map[user.Role]int{
		user.RoleUser:         1,
		user.RoleHotelManager: 2,
		user.RoleAdmin:        3,
	}
)

func NewAuthMiddleware(authenticator usecase.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authenticator: authenticator}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		actor, err := m.authenticator.Authenticate(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "path", c.FullPath(), "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errActorMissing, "Internal server error", nil)
			return
		}

		if !hasMinimumRole(role, minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficientRole, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if actor, err := m.authenticator.Authenticate(token); err == nil {
				setActor(c, actor)
			}
		}
		c.Next()
	}
}

func hasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

// extractToken prefers the access cookie over the Authorization header.
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

func setActor(c *gin.Context, actor user.Actor) {
	c.Set(ctxUserIDKey, actor.ID)
	c.Set(ctxUserRoleKey, actor.Role)
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

// GetActor combines the authenticated id and role set by RequireAuth.
func GetActor(c *gin.Context) (user.Actor, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return user.Actor{}, false
	}
	role, ok := GetUserRole(c)
	if !ok {
		return user.Actor{}, false
	}
	return user.Actor{ID: id, Role: role}, true
}
