package suite

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// GetDateTime returns a time.Time object from a string.
// Example: GetDateTime("2024-01-15")
func GetDateTime(t *testing.T, incomingDateTime string) time.Time {
	t.Helper()

	dateTime, err := time.Parse("2006-01-02", incomingDateTime)
	if err != nil {
		t.Fatalf("could not parse date time: %v", err)
	}
	return dateTime
}

// GetDecimal returns a decimal pointer for a literal rate value.
func GetDecimal(t *testing.T, value string) *decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("could not parse decimal: %v", err)
	}
	return &d
}
