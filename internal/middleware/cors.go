package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS applies the relay's permissive policy: any origin may call it.
// Every OPTIONS request is answered 204 here, before any handler or the
// proxy fallback can see it.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, x-api-version")
		c.Writer.Header().Set("Access-Control-Allow-Methods",
			"GET, POST, OPTIONS, DELETE")
		c.Writer.Header().Set("Access-Control-Max-Age", "600")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent) // 204, no body
			return
		}

		c.Next()
	}
}
