package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thehellodigital/job-khuiji/db"
	"github.com/thehellodigital/job-khuiji/response"
)

// RequireDatabase rejects store-backed requests with 503 until the database
// connection is established. Reconnection happens in the background, never
// inside a request.
func RequireDatabase() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !db.Ready() {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "DB not connected"})
			return
		}
		c.Next()
	}
}
