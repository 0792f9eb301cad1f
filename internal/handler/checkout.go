package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gaicom/internal/gateway"
	"gaicom/internal/service"
)

// CheckoutHandler handles HTTP requests for checkout session creation.
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// CreateCheckoutSessionRequest is the HTTP request body for creating a
// checkout session. Amount stays untyped so string and numeric submissions
// coerce the same way.
type CreateCheckoutSessionRequest struct {
	Amount any `json:"amount"`
}

// CreateCheckoutSession handles POST /create-checkout-session
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var req CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gateway.ErrorResponse{Error: gateway.MsgInvalidJSON})
		return
	}

	resp, err := h.checkoutService.CreateSession(c.Request.Context(), service.CreateCheckoutRequest{
		Amount: req.Amount,
	})
	if err != nil {
		respondError(c, err, gateway.MsgCheckoutFailed)
		return
	}

	respondJSON(c, http.StatusOK, gateway.CheckoutResponse{URL: resp.URL})
}
