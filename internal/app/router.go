package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"gaicom/internal/gateway"
	"gaicom/internal/handler"
	"gaicom/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	CheckoutHandler   *handler.CheckoutHandler
	WebhookHandler    *handler.WebhookHandler
	NewsletterHandler *handler.NewsletterHandler
	AllowedOrigins    []string
	NewRelicApp       *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered. The route
// table mirrors the Lambda dispatcher: three POST operations, preflight via
// CORS middleware, and an explicit 404 default for everything else.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(deps.AllowedOrigins))

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.POST(gateway.PathCreateCheckoutSession, deps.CheckoutHandler.CreateCheckoutSession)
	router.POST(gateway.PathWebhook, deps.WebhookHandler.HandleWebhook)
	router.POST(gateway.PathNewsletter, deps.NewsletterHandler.Signup)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gateway.ErrorResponse{Error: gateway.MsgNotFound})
	})

	return router
}
