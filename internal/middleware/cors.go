package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gaicom/internal/gateway"
)

// CORSMiddleware attaches the gateway's CORS headers to every response and
// short-circuits preflight requests with an empty 204.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		c.Header(gateway.HeaderAllowOrigin, gateway.AllowOrigin(origin, allowedOrigins))
		c.Header(gateway.HeaderAllowHeaders, gateway.AllowedHeaders)
		c.Header(gateway.HeaderAllowMethods, gateway.AllowedMethods)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
