package response

import "github.com/gin-gonic/gin"

// OK writes the success envelope, merging any extra fields next to "ok".
func OK(c *gin.Context, statusCode int, extra gin.H) {
	payload := gin.H{"ok": true}
	for k, v := range extra {
		payload[k] = v
	}
	c.JSON(statusCode, payload)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"ok":    false,
		"error": message,
	})
}
