package handler

import (
	"github.com/gin-gonic/gin"

	"gaicom/internal/gateway"
)

// respondError translates a service error to an HTTP response. Response shapes
// and the translator are shared with the Lambda surface in internal/gateway.
func respondError(c *gin.Context, err error, upstreamMessage string) {
	status, payload := gateway.ErrorBody(err, upstreamMessage)
	c.JSON(status, payload)
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}
