package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"gaicom/internal/domain"
	"gaicom/internal/repository"
)

// emailPattern accepts local@domain.tld with no whitespace or extra @ signs.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Per-field validation messages surfaced to the signup form.
const (
	msgFirstNameRequired = "First name is required."
	msgLastNameRequired  = "Last name is required."
	msgEmailRequired     = "Email is required."
	msgEmailInvalid      = "Please enter a valid email."
)

// NewsletterService validates signups and appends them to the subscriber sheet.
type NewsletterService struct {
	subscribers repository.SubscriberRepository
	now         func() time.Time
}

// NewNewsletterService creates a new NewsletterService.
func NewNewsletterService(subscribers repository.SubscriberRepository) *NewsletterService {
	return &NewsletterService{
		subscribers: subscribers,
		now:         time.Now,
	}
}

// SignupRequest contains the raw signup form fields.
type SignupRequest struct {
	FirstName string
	LastName  string
	Email     string
}

// Signup validates the submission and appends one row to the subscriber sheet.
// All field violations are accumulated before responding.
func (s *NewsletterService) Signup(ctx context.Context, req SignupRequest) error {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	email := strings.TrimSpace(req.Email)

	fieldErrors := make(map[string]string)
	if firstName == "" {
		fieldErrors["firstName"] = msgFirstNameRequired
	}
	if lastName == "" {
		fieldErrors["lastName"] = msgLastNameRequired
	}
	if email == "" {
		fieldErrors["email"] = msgEmailRequired
	} else if !emailPattern.MatchString(email) {
		fieldErrors["email"] = msgEmailInvalid
	}

	if len(fieldErrors) > 0 {
		return &ValidationError{Fields: fieldErrors}
	}

	subscriber := &domain.Subscriber{
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		SignedUpAt: s.now().UTC(),
	}

	if err := s.subscribers.Append(ctx, subscriber); err != nil {
		log.Printf("[NEWSLETTER] append failed for %s: %v", subscriber.Email, err)
		return fmt.Errorf("append subscriber: %w", err)
	}

	log.Printf("[NEWSLETTER] signup recorded: %s", subscriber.Email)
	return nil
}
