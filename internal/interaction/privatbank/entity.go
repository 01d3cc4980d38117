package privatbank

import "github.com/shopspring/decimal"

// DateLayout is the date layout used by the p24api.
const DateLayout = "02.01.2006"

// ExchangeRatesResponse describes the p24api exchange_rates payload for one day.
type ExchangeRatesResponse struct {
	Date            string         `json:"date"` // ex: 15.01.2024
	Bank            string         `json:"bank"`
	BaseCurrency    int            `json:"baseCurrency"`
	BaseCurrencyLit string         `json:"baseCurrencyLit"`
	ExchangeRate    []ExchangeRate `json:"exchangeRate"`
}

// ExchangeRate is a single currency record of a daily payload. The
// commercial rates (SaleRate, PurchaseRate) are absent for currencies the
// bank does not trade over the counter.
type ExchangeRate struct {
	BaseCurrency   string           `json:"baseCurrency"`
	Currency       string           `json:"currency"`
	SaleRateNB     decimal.Decimal  `json:"saleRateNB"`
	PurchaseRateNB decimal.Decimal  `json:"purchaseRateNB"`
	SaleRate       *decimal.Decimal `json:"saleRate,omitempty"`
	PurchaseRate   *decimal.Decimal `json:"purchaseRate,omitempty"`
}
