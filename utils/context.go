package utils

import (
	"github.com/Crafty4/web1/entity"

	"github.com/gin-gonic/gin"
)

// CurrentUserID reads the user id set by the auth middleware.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func CurrentRole(c *gin.Context) entity.Role {
	if v, ok := c.Get("role"); ok {
		if r, ok := v.(entity.Role); ok {
			return r
		}
	}
	return ""
}
