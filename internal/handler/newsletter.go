package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gaicom/internal/gateway"
	"gaicom/internal/service"
)

// NewsletterHandler handles newsletter signup submissions.
type NewsletterHandler struct {
	newsletterService *service.NewsletterService
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(newsletterService *service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// SignupRequest is the HTTP request body for a newsletter signup.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Signup handles POST /newsletter
func (h *NewsletterHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gateway.ErrorResponse{Error: gateway.MsgInvalidJSON})
		return
	}

	err := h.newsletterService.Signup(c.Request.Context(), service.SignupRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		respondError(c, err, gateway.MsgNewsletterFailed)
		return
	}

	respondJSON(c, http.StatusOK, gateway.SignupResponse{Success: true})
}
