package repository

import (
	"context"

	"gaicom/internal/domain"
)

// SubscriberRepository stores newsletter signups. The backing store is
// append-only; the gateway never reads subscribers back.
type SubscriberRepository interface {
	Append(ctx context.Context, subscriber *domain.Subscriber) error
}
