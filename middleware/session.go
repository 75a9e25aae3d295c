package middleware

import (
	"net/http"

	"meishimail/utils"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware requires the wizard session ID header and places its
// value on the context for handlers.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(utils.SessionIDHeader)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Missing required header: " + utils.SessionIDHeader,
			})
			return
		}

		c.Set("sessionID", id)
		c.Next()
	}
}
