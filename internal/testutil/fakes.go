package testutil

import (
	"context"
	"fmt"

	"github.com/yshpitzer/portfolio-services/internal/apperrors"
	"github.com/yshpitzer/portfolio-services/internal/model"
)

// StaticOracle is a pricing.Oracle backed by a fixed price table.
// Symbols absent from Prices report apperrors.ErrPriceUnavailable.
// Setting Err makes every lookup fail with that error.
type StaticOracle struct {
	Prices map[string]float64
	Err    error
}

// PriceOf returns the configured price for symbol.
func (o *StaticOracle) PriceOf(_ context.Context, symbol string) (model.Quote, error) {
	if o.Err != nil {
		return model.Quote{}, o.Err
	}
	price, ok := o.Prices[symbol]
	if !ok {
		return model.Quote{}, fmt.Errorf("%w: no price for %s", apperrors.ErrPriceUnavailable, symbol)
	}
	return model.Quote{Symbol: symbol, Price: price}, nil
}

// StaticLister is a stocksapi.Lister that serves a fixed stock collection
// or a fixed error.
type StaticLister struct {
	Stocks []model.Stock
	Err    error
}

// ListStocks returns the configured collection.
func (l *StaticLister) ListStocks(_ context.Context) ([]model.Stock, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	return l.Stocks, nil
}
