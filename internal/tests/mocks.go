package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/stripe/stripe-go/v81"

	"gaicom/internal/domain"
)

// ──────────────────────────────────────────────
// MOCK CHECKOUT PROVIDER
// ──────────────────────────────────────────────

// MockCheckoutProvider is a mock implementation of service.CheckoutProvider.
type MockCheckoutProvider struct {
	mu         sync.Mutex
	LastParams *stripe.CheckoutSessionParams

	// Session returned on success.
	Session *stripe.CheckoutSession

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockCheckoutProvider creates a mock provider returning a hosted URL.
func NewMockCheckoutProvider() *MockCheckoutProvider {
	return &MockCheckoutProvider{
		Session: &stripe.CheckoutSession{
			ID:  "cs_test_123",
			URL: "https://checkout.stripe.com/c/pay/cs_test_123",
		},
	}
}

func (m *MockCheckoutProvider) CreateSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	atomic.AddInt32(&m.CreateCallCount, 1)
	m.mu.Lock()
	m.LastParams = params
	m.mu.Unlock()
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	return m.Session, nil
}

// UnitAmount returns the minor-unit amount of the last created session.
func (m *MockCheckoutProvider) UnitAmount() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LastParams == nil || len(m.LastParams.LineItems) == 0 {
		return -1
	}
	return *m.LastParams.LineItems[0].PriceData.UnitAmount
}

// ──────────────────────────────────────────────
// MOCK SUBSCRIBER REPOSITORY
// ──────────────────────────────────────────────

// MockSubscriberRepository is a mock implementation of repository.SubscriberRepository.
type MockSubscriberRepository struct {
	mu          sync.Mutex
	subscribers []*domain.Subscriber

	// Counters for verification
	AppendCallCount int32

	// Error injection
	AppendError error
}

// NewMockSubscriberRepository creates a new mock subscriber repository.
func NewMockSubscriberRepository() *MockSubscriberRepository {
	return &MockSubscriberRepository{}
}

func (m *MockSubscriberRepository) Append(ctx context.Context, subscriber *domain.Subscriber) error {
	atomic.AddInt32(&m.AppendCallCount, 1)
	if m.AppendError != nil {
		return m.AppendError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *subscriber
	m.subscribers = append(m.subscribers, &copy)
	return nil
}

// Subscribers returns a snapshot of the appended rows.
func (m *MockSubscriberRepository) Subscribers() []*domain.Subscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Subscriber, len(m.subscribers))
	copy(out, m.subscribers)
	return out
}

// ──────────────────────────────────────────────
// MOCK EVENT STORE (WEBHOOK DEDUP)
// ──────────────────────────────────────────────

// MockEventStore is a mock implementation of redis.EventStoreInterface.
type MockEventStore struct {
	mu   sync.Mutex
	seen map[string]bool

	// Counters for verification
	MarkSeenCallCount int32

	// Error injection
	MarkSeenError error
}

// NewMockEventStore creates a new mock event store.
func NewMockEventStore() *MockEventStore {
	return &MockEventStore{seen: make(map[string]bool)}
}

func (m *MockEventStore) MarkSeen(ctx context.Context, eventID string) (bool, error) {
	atomic.AddInt32(&m.MarkSeenCallCount, 1)
	if m.MarkSeenError != nil {
		return false, m.MarkSeenError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seen[eventID] {
		return false, nil
	}
	m.seen[eventID] = true
	return true, nil
}
