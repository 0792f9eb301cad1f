package main

import (
	"context"
	"log"
	"time"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"gaicom/internal/app"
	"gaicom/internal/config"
	"gaicom/internal/gateway"
	internalRedis "gaicom/internal/redis"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Webhook event dedup is optional; a cold start without Redis still serves.
	var dedup internalRedis.EventStoreInterface
	if cfg.Redis.Addr != "" {
		redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nil)
		if err != nil {
			log.Printf("redis unavailable, webhook dedup disabled: %v", err)
		} else {
			dedup = internalRedis.NewEventStore(redisClient)
		}
	}

	services := app.NewServices(cfg, dedup)
	handler := gateway.NewHandler(gateway.Deps{
		CheckoutService:   services.Checkout,
		WebhookService:    services.Webhook,
		NewsletterService: services.Newsletter,
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
	})

	awslambda.Start(handler.Handle)
}
