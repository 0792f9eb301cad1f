package googlesheets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"gaicom/internal/domain"
	"gaicom/internal/repository"
)

// valueInputUserEntered lets the Sheets API parse the timestamp cell as a date.
const valueInputUserEntered = "USER_ENTERED"

// SubscriberRepository appends newsletter signups to a Google Sheet using a
// service-account credential.
type SubscriberRepository struct {
	credentialsJSON string
	spreadsheetID   string
	sheetRange      string
}

// NewSubscriberRepository creates a new SubscriberRepository.
func NewSubscriberRepository(credentialsJSON, spreadsheetID, sheetRange string) *SubscriberRepository {
	return &SubscriberRepository{
		credentialsJSON: credentialsJSON,
		spreadsheetID:   spreadsheetID,
		sheetRange:      sheetRange,
	}
}

// Append adds one subscriber row to the sheet. The Sheets client is built per
// call; each invocation is independent and a missing credential fails only the
// invocation that needs it.
func (r *SubscriberRepository) Append(ctx context.Context, subscriber *domain.Subscriber) error {
	if r.credentialsJSON == "" || r.spreadsheetID == "" {
		return errors.New("google sheets is not configured")
	}

	service, err := sheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(r.credentialsJSON)),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return fmt.Errorf("create sheets client: %w", err)
	}

	row := []interface{}{
		subscriber.FirstName,
		subscriber.LastName,
		subscriber.Email,
		subscriber.SignedUpAt.Format(time.RFC3339),
	}

	_, err = service.Spreadsheets.Values.
		Append(r.spreadsheetID, r.sheetRange, &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption(valueInputUserEntered).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}

	return nil
}

var _ repository.SubscriberRepository = (*SubscriberRepository)(nil)
