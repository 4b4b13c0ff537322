package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/toms1010/YACC-2025-Sports-Event-Registration/registration"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

var _ registration.Repository = &Client{}

// Client appends registrations to one sheet of a Google spreadsheet.
type Client struct {
	srv           *sheetsv4.Service
	spreadsheetID string
	sheetName     string
}

func New(ctx context.Context, spreadsheetID, sheetName string, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithScopes(sheetsv4.SpreadsheetsScope)}, opts...)

	srv, err := sheetsv4.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		srv:           srv,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// NewFromServiceAccountJSON authenticates with a service account key.
func NewFromServiceAccountJSON(ctx context.Context, credentialsJSON []byte, spreadsheetID, sheetName string) (*Client, error) {
	return New(ctx, spreadsheetID, sheetName, option.WithCredentialsJSON(credentialsJSON))
}

func (c *Client) SpreadsheetID() string { return c.spreadsheetID }

// a1 prefixes a range with the quoted sheet name.
func (c *Client) a1(rng string) string {
	return "'" + strings.ReplaceAll(c.sheetName, "'", "''") + "'!" + rng
}

// columnLetter turns a 1-based column number into its A1 letters.
func columnLetter(n int) string {
	var letters []byte
	for n > 0 {
		n--
		letters = append([]byte{byte('A' + n%26)}, letters...)
		n /= 26
	}
	return string(letters)
}
