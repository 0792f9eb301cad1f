package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDonationAmount is returned when the donation amount is
	// missing, not a number, or outside the accepted range.
	ErrInvalidDonationAmount = errors.New("donation amount must be between 1 and 5000")

	// ErrSignatureVerification is returned when a webhook payload fails
	// signature verification.
	ErrSignatureVerification = errors.New("webhook signature verification failed")
)

// ValidationError carries per-field messages for a rejected signup.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}
