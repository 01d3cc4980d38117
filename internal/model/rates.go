package model

import "github.com/shopspring/decimal"

// Currencies reported in the daily summary.
const (
	CurrencyEUR = "EUR"
	CurrencyUSD = "USD"
)

func init() {
	// rate values are JSON numbers in the dump, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Rate describes one currency quote for a single day.
// A nil side means the bank did not publish it for that day.
type Rate struct {
	Sale     *decimal.Decimal `json:"sale"`
	Purchase *decimal.Decimal `json:"purchase"`
}

// DailyRates holds the quotes of one day keyed by currency code, under a
// single DD.MM.YYYY date key.
type DailyRates map[string]map[string]Rate

// ResultSet holds one DailyRates entry per day that had data, most recent
// day first.
type ResultSet []DailyRates
