package privatbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// DefaultBaseURL is the public p24api endpoint.
const DefaultBaseURL = "https://api.privatbank.ua/p24api"

// APIError is an unexpected HTTP status returned by the p24api.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api request failed with status code %d: %s", e.StatusCode, e.Body)
}

type Interaction struct {
	logger  *slog.Logger
	client  *http.Client
	baseURL string
}

// NewInteraction creates a new instance of Interaction with the PrivatBank p24api.
func NewInteraction(logger *slog.Logger, client *http.Client, baseURL string) *Interaction {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Interaction{
		logger:  logger.With("component", "privatbank"),
		client:  client,
		baseURL: baseURL,
	}
}

// FetchRates returns the exchange rates published for the given date,
// formatted as DateLayout. A nil response with a nil error means the day has
// nothing to report: a 404, a transport failure and a malformed body are all
// logged and swallowed here, so one bad day never aborts a whole window.
// Any other non-200 status comes back as *APIError.
func (that *Interaction) FetchRates(ctx context.Context, date string) (*ExchangeRatesResponse, error) {
	log := that.logger.With("method", "FetchRates", "date", date)

	target := fmt.Sprintf("%s/exchange_rates?json&date=%s", that.baseURL, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		log.Error("unexpected error while building request", "error", err)
		return nil, nil
	}

	resp, err := that.client.Do(req)
	if err != nil {
		log.Error("network error while fetching rates", "error", err)
		return nil, nil
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		log.Info("no data available")
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("unexpected error while reading response body", "error", err)
		return nil, nil
	}

	var rates ExchangeRatesResponse
	if err = json.Unmarshal(body, &rates); err != nil {
		log.Error("unexpected error while decoding response body", "error", err)
		return nil, nil
	}

	return &rates, nil
}
