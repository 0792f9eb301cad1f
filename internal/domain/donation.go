package domain

import "time"

// Donation represents a completed donation reported by the payments provider.
// It is logged for observability only; the gateway never stores it.
type Donation struct {
	SessionID  string
	Amount     float64 // major units (dollars)
	Currency   string  // upper-case ISO code
	Email      string  // "N/A" when the provider reports none
	ReceivedAt time.Time
}
