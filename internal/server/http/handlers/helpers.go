package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sureshift/backend/internal/server/http/middleware"
)

// CurrentAdminID extracts the authenticated admin identifier from context.
func CurrentAdminID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.AdminIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}
