// Package stocksapi provides the HTTP client the capital-gains service uses
// to fetch the holding collection from the stocks record service.
package stocksapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/yshpitzer/portfolio-services/internal/apperrors"
	"github.com/yshpitzer/portfolio-services/internal/model"
)

// Lister fetches the full holding collection from the record service.
type Lister interface {
	ListStocks(ctx context.Context) ([]model.Stock, error)
}

// Client is an HTTP client for the stocks record service.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a stocks service client with a bounded request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// ListStocks retrieves all stocks from the record service.
//
// A transport failure or non-success status wraps
// apperrors.ErrStocksServiceUnavailable; a success response that does not
// decode as a stock array wraps apperrors.ErrMalformedStocksResponse, since
// it means the upstream answered with an unexpected shape rather than being
// down.
func (c *Client) ListStocks(ctx context.Context) ([]model.Stock, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stocks", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build stocks request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStocksServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrStocksServiceUnavailable, resp.StatusCode)
	}

	var stocks []model.Stock
	if err := json.NewDecoder(resp.Body).Decode(&stocks); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedStocksResponse, err)
	}

	return stocks, nil
}
