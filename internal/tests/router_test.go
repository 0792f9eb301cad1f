package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"gaicom/internal/app"
	"gaicom/internal/gateway"
	"gaicom/internal/handler"
	"gaicom/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() (*gin.Engine, *MockCheckoutProvider, *MockSubscriberRepository) {
	provider := NewMockCheckoutProvider()
	repo := NewMockSubscriberRepository()

	checkoutService := service.NewCheckoutService(provider, "https://example.org/donate/success", "https://example.org/donate/cancel")
	webhookService := service.NewWebhookService(service.NewStripeEventVerifier(testWebhookSecret), nil)
	newsletterService := service.NewNewsletterService(repo)

	router := app.NewRouter(app.RouterDeps{
		CheckoutHandler:   handler.NewCheckoutHandler(checkoutService),
		WebhookHandler:    handler.NewWebhookHandler(webhookService),
		NewsletterHandler: handler.NewNewsletterHandler(newsletterService),
		AllowedOrigins:    testOrigins,
	})

	return router, provider, repo
}

func TestRouter_CreateCheckoutSession(t *testing.T) {
	t.Parallel()

	router, provider, _ := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, gateway.PathCreateCheckoutSession, strings.NewReader(`{"amount": 50}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var body gateway.CheckoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.URL != provider.Session.URL {
		t.Errorf("expected hosted URL %s, got %s", provider.Session.URL, body.URL)
	}
}

func TestRouter_CreateCheckoutSession_OutOfRange(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, gateway.PathCreateCheckoutSession, strings.NewReader(`{"amount": 10000}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Amount must be between $1 and $5,000") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_Newsletter_Signup(t *testing.T) {
	t.Parallel()

	router, _, repo := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, gateway.PathNewsletter,
		strings.NewReader(`{"firstName":"Jane","lastName":"Doe","email":"jane@example.org"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if repo.AppendCallCount != 1 {
		t.Errorf("expected 1 append, got %d", repo.AppendCallCount)
	}
}

func TestRouter_Preflight_CORSHeaders(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, gateway.PathNewsletter, nil)
	req.Header.Set("Origin", "http://localhost:5173")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get(gateway.HeaderAllowOrigin); got != "http://localhost:5173" {
		t.Errorf("expected reflected origin, got %q", got)
	}
	if got := rec.Header().Get(gateway.HeaderAllowMethods); got != "POST, OPTIONS" {
		t.Errorf("unexpected allow-methods: %q", got)
	}
}

func TestRouter_UnknownRoute_NotFoundWithCORS(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	req.Header.Set("Origin", "https://unlisted.example.com")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Not found") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
	// Error paths keep CORS headers so the browser can read the failure.
	if got := rec.Header().Get(gateway.HeaderAllowOrigin); got != testOrigins[0] {
		t.Errorf("expected fallback origin %q, got %q", testOrigins[0], got)
	}
}

func TestRouter_Webhook_BadSignature_PlainText(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, gateway.PathWebhook, strings.NewReader(`{"id":"evt_x"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=bogus")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec.Body.String() != "Webhook signature verification failed" {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}
