package redis

import "context"

// EventStoreInterface defines the interface for webhook event dedup.
type EventStoreInterface interface {
	MarkSeen(ctx context.Context, eventID string) (bool, error)
}

// Ensure concrete types implement interfaces.
var _ EventStoreInterface = (*EventStore)(nil)
