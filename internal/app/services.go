package app

import (
	"gaicom/internal/config"
	internalRedis "gaicom/internal/redis"
	"gaicom/internal/repository/googlesheets"
	"gaicom/internal/service"
)

// Services bundles the three gateway operations, shared by both transport
// surfaces.
type Services struct {
	Checkout   *service.CheckoutService
	Webhook    *service.WebhookService
	Newsletter *service.NewsletterService
}

// NewServices wires the gateway services from configuration. dedup may be nil;
// webhook event dedup is then disabled.
func NewServices(cfg *config.Config, dedup internalRedis.EventStoreInterface) *Services {
	checkoutProvider := service.NewStripeCheckoutProvider(cfg.Stripe.SecretKey)
	eventVerifier := service.NewStripeEventVerifier(cfg.Stripe.WebhookSecret)
	subscriberRepo := googlesheets.NewSubscriberRepository(
		cfg.Sheets.CredentialsJSON,
		cfg.Sheets.SpreadsheetID,
		cfg.Sheets.Range,
	)

	return &Services{
		Checkout:   service.NewCheckoutService(checkoutProvider, cfg.Stripe.SuccessURL, cfg.Stripe.CancelURL),
		Webhook:    service.NewWebhookService(eventVerifier, dedup),
		Newsletter: service.NewNewsletterService(subscriberRepo),
	}
}
