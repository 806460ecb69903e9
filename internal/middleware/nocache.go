package middleware

import "github.com/gin-gonic/gin"

// NoCache returns a Gin middleware that forbids caching of every response.
// The SPA frontend polls the same endpoints after each mutation, so a cached
// transaction list would show stale data.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Writer.Header().Set("Pragma", "no-cache")
		c.Writer.Header().Set("Expires", "0")
		c.Next()
	}
}
