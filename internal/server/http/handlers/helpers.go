package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/trollcity/economy/internal/server/http/middleware"
)

// CurrentUserID extracts the gateway-supplied user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentAdminID extracts the acting administrator identifier from context.
func CurrentAdminID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.AdminIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}
