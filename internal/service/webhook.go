package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"

	"gaicom/internal/domain"
	internalRedis "gaicom/internal/redis"
)

// EventVerifier authenticates a raw webhook payload against its signature
// header. Verification must see the exact bytes Stripe signed.
type EventVerifier interface {
	VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error)
}

// stripeEventVerifier implements EventVerifier with Stripe's HMAC scheme.
type stripeEventVerifier struct {
	secret string
}

// NewStripeEventVerifier creates an EventVerifier for the given signing secret.
func NewStripeEventVerifier(secret string) EventVerifier {
	return &stripeEventVerifier{secret: secret}
}

func (v *stripeEventVerifier) VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	// Stripe pins webhook payloads to the account's API version, which may
	// trail the SDK's; the signature check alone decides authenticity.
	return webhook.ConstructEventWithOptions(payload, sigHeader, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}

// WebhookService authenticates payment-lifecycle notifications and records
// completed donations.
type WebhookService struct {
	verifier EventVerifier
	dedup    internalRedis.EventStoreInterface // nil disables dedup
	now      func() time.Time
}

// NewWebhookService creates a new WebhookService. dedup may be nil, in which
// case repeated deliveries of the same event are logged again.
func NewWebhookService(verifier EventVerifier, dedup internalRedis.EventStoreInterface) *WebhookService {
	return &WebhookService{
		verifier: verifier,
		dedup:    dedup,
		now:      time.Now,
	}
}

// HandleEvent verifies the payload signature and, for completed checkout
// sessions, logs the donation. It returns ErrSignatureVerification for any
// verification failure; all other outcomes acknowledge the event.
func (s *WebhookService) HandleEvent(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := s.verifier.VerifyEvent(payload, sigHeader)
	if err != nil {
		log.Printf("[WEBHOOK] signature verification failed: %v", err)
		return fmt.Errorf("%w: %v", ErrSignatureVerification, err)
	}

	if s.dedup != nil {
		fresh, err := s.dedup.MarkSeen(ctx, event.ID)
		if err != nil {
			// Dedup is advisory; a Redis failure never rejects a verified event.
			log.Printf("[WEBHOOK] dedup check failed for event %s: %v", event.ID, err)
		} else if !fresh {
			log.Printf("[WEBHOOK] duplicate delivery of event %s, skipping", event.ID)
			return nil
		}
	}

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		return nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		// Verified but unparseable object: acknowledge so Stripe stops retrying.
		log.Printf("[WEBHOOK] failed to decode session from event %s: %v", event.ID, err)
		return nil
	}

	email := "N/A"
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		email = session.CustomerDetails.Email
	}

	donation := domain.Donation{
		SessionID:  session.ID,
		Amount:     float64(session.AmountTotal) / 100,
		Currency:   strings.ToUpper(string(session.Currency)),
		Email:      email,
		ReceivedAt: s.now(),
	}

	log.Printf("[DONATION] session=%s amount=$%.2f %s email=%s",
		donation.SessionID, donation.Amount, donation.Currency, donation.Email)

	return nil
}
