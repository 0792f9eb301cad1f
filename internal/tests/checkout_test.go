package tests

import (
	"context"
	"errors"
	"testing"

	"gaicom/internal/service"
)

// ──────────────────────────────────────────────
// 1. DONATION AMOUNT VALIDATION
// ──────────────────────────────────────────────

func TestCheckout_ValidAmount_ReturnsHostedURL(t *testing.T) {
	t.Parallel()

	provider := NewMockCheckoutProvider()
	checkoutService := service.NewCheckoutService(provider, "https://example.org/donate/success", "https://example.org/donate/cancel")

	resp, err := checkoutService.CreateSession(context.Background(), service.CreateCheckoutRequest{Amount: float64(50)})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if resp.URL != provider.Session.URL {
		t.Errorf("expected URL %s, got %s", provider.Session.URL, resp.URL)
	}

	if provider.CreateCallCount != 1 {
		t.Errorf("expected 1 provider call, got %d", provider.CreateCallCount)
	}
}

func TestCheckout_AmountOutOfRange_Rejected(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		amount any
	}{
		{name: "zero", amount: float64(0)},
		{name: "above maximum", amount: float64(5001)},
		{name: "negative", amount: float64(-5)},
		{name: "missing", amount: nil},
		{name: "non-numeric string", amount: "NaN"},
		{name: "boolean", amount: true},
		{name: "just below minimum", amount: float64(0.99)},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := NewMockCheckoutProvider()
			checkoutService := service.NewCheckoutService(provider, "https://example.org/success", "https://example.org/cancel")

			_, err := checkoutService.CreateSession(context.Background(), service.CreateCheckoutRequest{Amount: tc.amount})
			if !errors.Is(err, service.ErrInvalidDonationAmount) {
				t.Errorf("expected ErrInvalidDonationAmount, got: %v", err)
			}

			if provider.CreateCallCount != 0 {
				t.Errorf("expected provider not to be called, got %d calls", provider.CreateCallCount)
			}
		})
	}
}

func TestCheckout_BoundaryAmounts_Accepted(t *testing.T) {
	t.Parallel()

	for _, amount := range []float64{1, 5000} {
		provider := NewMockCheckoutProvider()
		checkoutService := service.NewCheckoutService(provider, "https://example.org/success", "https://example.org/cancel")

		_, err := checkoutService.CreateSession(context.Background(), service.CreateCheckoutRequest{Amount: amount})
		if err != nil {
			t.Errorf("amount %v: expected no error, got: %v", amount, err)
		}
	}
}

// ──────────────────────────────────────────────
// 2. MINOR-UNIT CONVERSION
// ──────────────────────────────────────────────

func TestCheckout_MinorUnits_RoundedToNearestCent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		amount     any
		unitAmount int64
	}{
		{amount: float64(50), unitAmount: 5000},
		{amount: float64(25.5), unitAmount: 2550},
		{amount: float64(10.55), unitAmount: 1055},
		{amount: float64(49.99), unitAmount: 4999},
		{amount: "120", unitAmount: 12000},
	}

	for _, tc := range testCases {
		provider := NewMockCheckoutProvider()
		checkoutService := service.NewCheckoutService(provider, "https://example.org/success", "https://example.org/cancel")

		_, err := checkoutService.CreateSession(context.Background(), service.CreateCheckoutRequest{Amount: tc.amount})
		if err != nil {
			t.Fatalf("amount %v: expected no error, got: %v", tc.amount, err)
		}

		if got := provider.UnitAmount(); got != tc.unitAmount {
			t.Errorf("amount %v: expected unit amount %d, got %d", tc.amount, tc.unitAmount, got)
		}
	}
}

func TestCheckout_SessionParams_CarrySuccessURLPlaceholder(t *testing.T) {
	t.Parallel()

	provider := NewMockCheckoutProvider()
	checkoutService := service.NewCheckoutService(provider, "https://example.org/donate/success", "https://example.org/donate/cancel")

	_, err := checkoutService.CreateSession(context.Background(), service.CreateCheckoutRequest{Amount: float64(20)})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	wantSuccess := "https://example.org/donate/success?session_id={CHECKOUT_SESSION_ID}"
	if got := *provider.LastParams.SuccessURL; got != wantSuccess {
		t.Errorf("expected success URL %q, got %q", wantSuccess, got)
	}

	if got := *provider.LastParams.CancelURL; got != "https://example.org/donate/cancel" {
		t.Errorf("unexpected cancel URL: %q", got)
	}

	if got := *provider.LastParams.LineItems[0].Quantity; got != 1 {
		t.Errorf("expected quantity 1, got %d", got)
	}
}

// ──────────────────────────────────────────────
// 3. PROVIDER FAILURE
// ──────────────────────────────────────────────

func TestCheckout_ProviderError_NotValidationError(t *testing.T) {
	t.Parallel()

	provider := NewMockCheckoutProvider()
	provider.CreateError = errors.New("stripe: invalid api key")
	checkoutService := service.NewCheckoutService(provider, "https://example.org/success", "https://example.org/cancel")

	_, err := checkoutService.CreateSession(context.Background(), service.CreateCheckoutRequest{Amount: float64(50)})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if errors.Is(err, service.ErrInvalidDonationAmount) {
		t.Error("provider failure must not map to the validation error")
	}
}
