package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// donationProductName is the line-item label shown on the hosted checkout page.
const donationProductName = "GAICOM Donation"

// Donation amount bounds in major units (dollars), inclusive.
const (
	minDonationAmount = 1
	maxDonationAmount = 5000
)

// CheckoutProvider creates hosted checkout sessions with the payments provider.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// stripeCheckoutProvider implements CheckoutProvider against the Stripe API.
type stripeCheckoutProvider struct {
	api *client.API
}

// NewStripeCheckoutProvider creates a CheckoutProvider backed by Stripe.
// An empty secret key is accepted; calls will fail at invocation time.
func NewStripeCheckoutProvider(secretKey string) CheckoutProvider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeCheckoutProvider{api: api}
}

func (p *stripeCheckoutProvider) CreateSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params.Context = ctx
	return p.api.CheckoutSessions.New(params)
}

// CheckoutService creates donation checkout sessions.
type CheckoutService struct {
	provider   CheckoutProvider
	successURL string
	cancelURL  string
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(provider CheckoutProvider, successURL, cancelURL string) *CheckoutService {
	return &CheckoutService{
		provider:   provider,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// CreateCheckoutRequest contains the parameters for creating a checkout session.
// Amount is the raw JSON value; coercion mirrors the frontend sending either a
// number or a numeric string.
type CreateCheckoutRequest struct {
	Amount any
}

// CreateCheckoutResponse contains the hosted checkout page URL.
type CreateCheckoutResponse struct {
	URL string
}

// CreateSession validates the donation amount and obtains a hosted-checkout
// redirect URL from the payments provider.
func (s *CheckoutService) CreateSession(ctx context.Context, req CreateCheckoutRequest) (*CreateCheckoutResponse, error) {
	amount := coerceAmount(req.Amount)
	if math.IsNaN(amount) || amount < minDonationAmount || amount > maxDonationAmount {
		return nil, ErrInvalidDonationAmount
	}

	// Stripe expects minor units (cents), rounded to the nearest cent.
	unitAmount := int64(math.Round(amount * 100))

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(donationProductName),
					},
					UnitAmount: stripe.Int64(unitAmount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		// Stripe substitutes the session ID placeholder at redirect time.
		SuccessURL: stripe.String(s.successURL + "?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.cancelURL),
	}

	session, err := s.provider.CreateSession(ctx, params)
	if err != nil {
		log.Printf("[CHECKOUT] session creation failed: %v", err)
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &CreateCheckoutResponse{URL: session.URL}, nil
}

// coerceAmount converts a decoded JSON value to a float64, yielding NaN for
// anything that is not a number or numeric string.
func coerceAmount(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
