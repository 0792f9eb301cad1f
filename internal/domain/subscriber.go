package domain

import "time"

// Subscriber represents a validated newsletter signup.
type Subscriber struct {
	FirstName  string
	LastName   string
	Email      string
	SignedUpAt time.Time
}
