package gateway

import (
	"errors"
	"net/http"

	"gaicom/internal/service"
)

// Client-facing response messages. Upstream error detail is logged server-side
// and never echoed to the caller.
const (
	MsgInvalidJSON      = "Invalid JSON body"
	MsgAmountRange      = "Amount must be between $1 and $5,000"
	MsgValidationFailed = "Validation failed"
	MsgNotFound         = "Not found"
	MsgCheckoutFailed   = "Failed to create checkout session"
	MsgNewsletterFailed = "Failed to save subscription"
	MsgSignatureFailed  = "Webhook signature verification failed"
)

// ErrorResponse is the generic JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries per-field messages for a rejected signup.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors"`
}

// CheckoutResponse is the success body for checkout session creation.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// WebhookResponse acknowledges a verified webhook delivery.
type WebhookResponse struct {
	Received bool `json:"received"`
}

// SignupResponse is the success body for newsletter signups.
type SignupResponse struct {
	Success bool `json:"success"`
}

// ErrorBody translates a service error into an HTTP status and response body.
// upstreamMessage is the operation's generic 500 message; it is the only thing
// a caller ever sees of a dependency failure.
func ErrorBody(err error, upstreamMessage string) (int, any) {
	var validationErr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrInvalidDonationAmount):
		return http.StatusBadRequest, ErrorResponse{Error: MsgAmountRange}
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, ValidationErrorResponse{Error: MsgValidationFailed, Errors: validationErr.Fields}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: upstreamMessage}
	}
}
