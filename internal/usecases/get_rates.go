package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"kurs/internal/interaction/privatbank"
	"kurs/internal/model"
)

// Bounds of the trailing window the p24api is asked for.
const (
	MinDays = 1
	MaxDays = 10
)

// ErrDaysOutOfRange is returned before any network activity when the
// requested window does not fit [MinDays, MaxDays].
var ErrDaysOutOfRange = errors.New("days must be between 1 and 10")

type Interaction interface {
	FetchRates(ctx context.Context, date string) (*privatbank.ExchangeRatesResponse, error)
}

type Option func(that *GetRatesUsecase)

// WithNow overrides the clock used to derive the trailing window.
func WithNow(now func() time.Time) Option {
	return func(that *GetRatesUsecase) { that.now = now }
}

type GetRatesUsecase struct {
	logger      *slog.Logger
	interaction Interaction
	now         func() time.Time
}

func NewGetRatesUsecase(logger *slog.Logger, interaction Interaction, opts ...Option) *GetRatesUsecase {
	that := &GetRatesUsecase{
		logger:      logger.With("component", "get_rates"),
		interaction: interaction,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(that)
	}

	return that
}

// GetRates fetches the EUR/USD quotes for the last days calendar days, today
// included, one request in flight at a time in descending date order. Days
// without data are left out, so the result may be shorter than days.
func (that *GetRatesUsecase) GetRates(ctx context.Context, days int) (model.ResultSet, error) {
	if days < MinDays || days > MaxDays {
		return nil, ErrDaysOutOfRange
	}

	log := that.logger.With("method", "GetRates")
	today := that.now()

	rates := make(model.ResultSet, 0, days)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, -i).Format(privatbank.DateLayout)

		payload, err := that.interaction.FetchRates(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("fetch rates for %s: %w", date, err)
		}
		if payload == nil {
			continue
		}

		daily := extractRates(payload, date)
		if daily == nil {
			log.Debug("no EUR/USD records", "date", date)
			continue
		}

		rates = append(rates, daily)
	}

	return rates, nil
}

// extractRates keeps only the EUR and USD records of one day's payload,
// sale and purchase taken verbatim. It returns nil when neither currency is
// present.
func extractRates(payload *privatbank.ExchangeRatesResponse, date string) model.DailyRates {
	quotes := make(map[string]model.Rate)

	for _, record := range payload.ExchangeRate {
		switch record.Currency {
		case model.CurrencyEUR, model.CurrencyUSD:
			quotes[record.Currency] = model.Rate{Sale: record.SaleRate, Purchase: record.PurchaseRate}
		}
	}

	if len(quotes) == 0 {
		return nil
	}

	return model.DailyRates{date: quotes}
}
