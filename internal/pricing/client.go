// Package pricing provides a client for the api-ninjas stock price API.
// It normalizes the remote response shape at the boundary: callers only ever
// see a Quote or apperrors.ErrPriceUnavailable, never the raw payload.
package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/yshpitzer/portfolio-services/internal/apperrors"
	"github.com/yshpitzer/portfolio-services/internal/model"
)

// Oracle looks up the current market price for a ticker symbol.
//
// A missing price is reported as apperrors.ErrPriceUnavailable; any other
// error is an adapter-internal fault callers must treat as a service failure.
type Oracle interface {
	PriceOf(ctx context.Context, symbol string) (model.Quote, error)
}

// Client fetches live prices from the api-ninjas stockprice endpoint.
// One outbound lookup per symbol, no caching or batching.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a price API client with a bounded request timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// quotePayload matches a single api-ninjas stockprice result. The endpoint
// has answered both as a bare object and as an array of objects, so both
// shapes are accepted.
type quotePayload struct {
	Ticker string   `json:"ticker"`
	Price  *float64 `json:"price"`
}

// PriceOf fetches the current price for symbol.
func (c *Client) PriceOf(ctx context.Context, symbol string) (model.Quote, error) {
	apiURL := fmt.Sprintf("%s?ticker=%s", c.baseURL, url.QueryEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to build price request for %s: %w", symbol, err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Quote{}, fmt.Errorf("price request for %s failed: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Quote{}, fmt.Errorf("%w: status %d for %s", apperrors.ErrPriceUnavailable, resp.StatusCode, symbol)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to read price response for %s: %w", symbol, err)
	}

	payload, err := decodeQuote(data)
	if err != nil {
		return model.Quote{}, fmt.Errorf("price lookup for %s: %w", symbol, err)
	}
	if payload.Price == nil {
		return model.Quote{}, fmt.Errorf("%w: no price field for %s", apperrors.ErrPriceUnavailable, symbol)
	}

	return model.Quote{Symbol: symbol, Price: *payload.Price}, nil
}

// decodeQuote normalizes the object-or-array response ambiguity.
// An empty array means no data, which is unavailability, not a fault.
func decodeQuote(data []byte) (quotePayload, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var quotes []quotePayload
		if err := json.Unmarshal(trimmed, &quotes); err != nil {
			return quotePayload{}, fmt.Errorf("failed to decode price response: %w", err)
		}
		if len(quotes) == 0 {
			return quotePayload{}, apperrors.ErrPriceUnavailable
		}
		return quotes[0], nil
	}

	var quote quotePayload
	if err := json.Unmarshal(trimmed, &quote); err != nil {
		return quotePayload{}, fmt.Errorf("failed to decode price response: %w", err)
	}
	return quote, nil
}
