package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// eventTTL bounds how long a processed event ID is remembered. Stripe stops
// retrying deliveries well within this window.
const eventTTL = 24 * time.Hour

// EventStore tracks processed webhook event IDs in Redis.
type EventStore struct {
	client *redis.Client
}

// NewEventStore creates a new EventStore.
func NewEventStore(client *redis.Client) *EventStore {
	return &EventStore{client: client}
}

// MarkSeen records the event ID if it has not been seen before.
// Returns true when this delivery is the first one.
func (s *EventStore) MarkSeen(ctx context.Context, eventID string) (bool, error) {
	key := fmt.Sprintf("webhook:event:%s", eventID)

	ok, err := s.client.SetNX(ctx, key, "1", eventTTL).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}
