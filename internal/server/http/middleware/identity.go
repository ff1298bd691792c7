package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDContextKey is a gin context key for the authenticated user id.
	UserIDContextKey = "userID"
	// AdminIDContextKey is a gin context key for the acting administrator id.
	AdminIDContextKey = "adminID"

	// UserIDHeader carries the user identity injected by the upstream
	// gateway, which owns authentication.
	UserIDHeader = "X-Troll-User-ID"
	// AdminIDHeader carries the administrator identity for admin routes.
	AdminIDHeader = "X-Troll-Admin-ID"
)

// RequireUser ensures the gateway supplied a user identity before the
// handler runs.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := identityFromHeader(c, UserIDHeader)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(UserIDContextKey, id)
		c.Next()
	}
}

// RequireAdmin ensures the gateway supplied an administrator identity.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := identityFromHeader(c, AdminIDHeader)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(AdminIDContextKey, id)
		c.Next()
	}
}

func identityFromHeader(c *gin.Context, header string) (int64, bool) {
	raw := c.GetHeader(header)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
