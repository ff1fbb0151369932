package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fantamatto/fantamatto/internal/server/http/dto"
	"github.com/fantamatto/fantamatto/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) string {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}

func abortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Detail: detail})
}
