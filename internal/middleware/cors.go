package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware ecoa a origem do painel e responde o pre-flight.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Vary", "Origin")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+HeaderRequestID)
			h.Set("Access-Control-Expose-Headers", HeaderRequestID)
			h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
