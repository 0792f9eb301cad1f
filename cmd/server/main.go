package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"gaicom/internal/app"
	"gaicom/internal/config"
	"gaicom/internal/handler"
	internalRedis "gaicom/internal/redis"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so Redis can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Webhook event dedup is optional; the gateway runs without it.
	var dedup internalRedis.EventStoreInterface
	if cfg.Redis.Addr != "" {
		redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			log.Printf("redis unavailable, webhook dedup disabled: %v", err)
		} else {
			defer redisClient.Close()
			dedup = internalRedis.NewEventStore(redisClient)
			log.Println("Connected to Redis, webhook dedup enabled")
		}
	}

	// Wire dependencies.
	server := wireServer(cfg, dedup, nrApp)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(cfg *config.Config, dedup internalRedis.EventStoreInterface, nrApp *newrelic.Application) *http.Server {
	services := app.NewServices(cfg, dedup)

	// Initialize handlers.
	checkoutHandler := handler.NewCheckoutHandler(services.Checkout)
	webhookHandler := handler.NewWebhookHandler(services.Webhook)
	newsletterHandler := handler.NewNewsletterHandler(services.Newsletter)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		CheckoutHandler:   checkoutHandler,
		WebhookHandler:    webhookHandler,
		NewsletterHandler: newsletterHandler,
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		NewRelicApp:       nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
