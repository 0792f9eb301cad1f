package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"gaicom/internal/gateway"
	"gaicom/internal/service"
)

// WebhookHandler handles payment-provider webhook deliveries.
type WebhookHandler struct {
	webhookService *service.WebhookService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhookService *service.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookService: webhookService}
}

// HandleWebhook handles POST /webhook. The body is read raw; signature
// verification requires the exact bytes the provider signed.
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err == nil {
		err = h.webhookService.HandleEvent(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	}
	if err != nil {
		c.String(http.StatusBadRequest, gateway.MsgSignatureFailed)
		return
	}

	respondJSON(c, http.StatusOK, gateway.WebhookResponse{Received: true})
}
