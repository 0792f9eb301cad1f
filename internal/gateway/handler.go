package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"gaicom/internal/service"
)

// Routes handled by the gateway.
const (
	PathCreateCheckoutSession = "/create-checkout-session"
	PathWebhook               = "/webhook"
	PathNewsletter            = "/newsletter"
)

// Handler dispatches Lambda Function URL requests to the gateway operations.
// It holds no per-request state; every invocation is independent.
type Handler struct {
	checkout       *service.CheckoutService
	webhook        *service.WebhookService
	newsletter     *service.NewsletterService
	allowedOrigins []string
}

// Deps contains all dependencies needed by the Handler.
type Deps struct {
	CheckoutService   *service.CheckoutService
	WebhookService    *service.WebhookService
	NewsletterService *service.NewsletterService
	AllowedOrigins    []string
}

// NewHandler creates a new Handler.
func NewHandler(deps Deps) *Handler {
	return &Handler{
		checkout:       deps.CheckoutService,
		webhook:        deps.WebhookService,
		newsletter:     deps.NewsletterService,
		allowedOrigins: deps.AllowedOrigins,
	}
}

// Handle routes one Function URL request. Errors never escape to the platform;
// every failure becomes an HTTP response with CORS headers attached.
func (h *Handler) Handle(ctx context.Context, req events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	cors := CORSHeaders(headerValue(req.Headers, "origin"), h.allowedOrigins)

	method := req.RequestContext.HTTP.Method
	if method == http.MethodOptions {
		// Preflight: CORS headers only, no further processing.
		return events.LambdaFunctionURLResponse{StatusCode: http.StatusNoContent, Headers: cors}, nil
	}

	path := req.RawPath

	switch {
	case method == http.MethodPost && path == PathCreateCheckoutSession:
		return h.createCheckoutSession(ctx, req, cors), nil
	case method == http.MethodPost && path == PathWebhook:
		return h.handleWebhook(ctx, req, cors), nil
	case method == http.MethodPost && path == PathNewsletter:
		return h.handleNewsletter(ctx, req, cors), nil
	default:
		return jsonResponse(http.StatusNotFound, ErrorResponse{Error: MsgNotFound}, cors), nil
	}
}

func (h *Handler) createCheckoutSession(ctx context.Context, req events.LambdaFunctionURLRequest, cors map[string]string) events.LambdaFunctionURLResponse {
	var body struct {
		Amount any `json:"amount"`
	}
	raw, err := rawBody(req)
	if err == nil {
		err = json.Unmarshal(raw, &body)
	}
	if err != nil {
		return jsonResponse(http.StatusBadRequest, ErrorResponse{Error: MsgInvalidJSON}, cors)
	}

	resp, err := h.checkout.CreateSession(ctx, service.CreateCheckoutRequest{Amount: body.Amount})
	if err != nil {
		status, payload := ErrorBody(err, MsgCheckoutFailed)
		return jsonResponse(status, payload, cors)
	}

	return jsonResponse(http.StatusOK, CheckoutResponse{URL: resp.URL}, cors)
}

func (h *Handler) handleWebhook(ctx context.Context, req events.LambdaFunctionURLRequest, cors map[string]string) events.LambdaFunctionURLResponse {
	// Signature verification needs the exact bytes Stripe sent, so the body
	// is base64-decoded but never re-parsed before verification.
	payload, err := rawBody(req)
	if err == nil {
		err = h.webhook.HandleEvent(ctx, payload, headerValue(req.Headers, "stripe-signature"))
	}
	if err != nil {
		return events.LambdaFunctionURLResponse{
			StatusCode: http.StatusBadRequest,
			Headers:    cors,
			Body:       MsgSignatureFailed,
		}
	}

	return jsonResponse(http.StatusOK, WebhookResponse{Received: true}, cors)
}

func (h *Handler) handleNewsletter(ctx context.Context, req events.LambdaFunctionURLRequest, cors map[string]string) events.LambdaFunctionURLResponse {
	var body struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	}
	raw, err := rawBody(req)
	if err == nil {
		err = json.Unmarshal(raw, &body)
	}
	if err != nil {
		return jsonResponse(http.StatusBadRequest, ErrorResponse{Error: MsgInvalidJSON}, cors)
	}

	err = h.newsletter.Signup(ctx, service.SignupRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
	})
	if err != nil {
		status, payload := ErrorBody(err, MsgNewsletterFailed)
		return jsonResponse(status, payload, cors)
	}

	return jsonResponse(http.StatusOK, SignupResponse{Success: true}, cors)
}

// rawBody returns the request body as the original UTF-8 bytes, decoding the
// transport's base64 wrapping when present.
func rawBody(req events.LambdaFunctionURLRequest) ([]byte, error) {
	if req.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(req.Body)
	}
	return []byte(req.Body), nil
}

// headerValue looks up a header case-insensitively; Function URLs lower-case
// header names but clients may not.
func headerValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// jsonResponse marshals a JSON body and attaches CORS headers.
func jsonResponse(status int, payload any, cors map[string]string) events.LambdaFunctionURLResponse {
	headers := make(map[string]string, len(cors)+1)
	for k, v := range cors {
		headers[k] = v
	}
	headers["Content-Type"] = "application/json"

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[GATEWAY] failed to marshal response body: %v", err)
		return events.LambdaFunctionURLResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    headers,
			Body:       `{"error":"Internal error"}`,
		}
	}

	return events.LambdaFunctionURLResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}
