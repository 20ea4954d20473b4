package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yshpitzer/portfolio-services/internal/apperrors"
	"github.com/yshpitzer/portfolio-services/internal/model"
	"github.com/yshpitzer/portfolio-services/internal/pricing"
	"github.com/yshpitzer/portfolio-services/internal/stocksapi"
)

// GainsService computes aggregate capital gains over the holding collection
// served by the stocks record service.
type GainsService struct {
	stocks stocksapi.Lister
	oracle pricing.Oracle
	log    zerolog.Logger
}

// NewGainsService creates a new GainsService with the provided dependencies.
func NewGainsService(stocks stocksapi.Lister, oracle pricing.Oracle, log zerolog.Logger) *GainsService {
	return &GainsService{
		stocks: stocks,
		oracle: oracle,
		log:    log,
	}
}

// CapitalGains fetches the holding collection, narrows it by the share-count
// criteria and totals (currentPrice - purchasePrice) * shares across it,
// rounded to 2 decimal places.
//
// A holding whose price is unavailable is skipped and logged; it contributes
// nothing and does not abort the batch. Adapter-internal faults still fail
// the whole computation. The total over an empty set is 0.
func (s *GainsService) CapitalGains(ctx context.Context, criteria model.FilterCriteria) (float64, error) {
	stocks, err := s.stocks.ListStocks(ctx)
	if err != nil {
		return 0, err
	}

	portfolio := FilterByShares(stocks, criteria)

	var mu sync.Mutex
	total := 0.0

	g, gctx := errgroup.WithContext(ctx)
	for _, stock := range portfolio {
		g.Go(func() error {
			quote, err := s.oracle.PriceOf(gctx, stock.Symbol)
			if err != nil {
				if errors.Is(err, apperrors.ErrPriceUnavailable) {
					s.log.Warn().
						Str("symbol", stock.Symbol).
						Msg("price unavailable, skipping holding in capital gains")
					return nil
				}
				return err
			}

			gain := (quote.Price - stock.PurchasePrice) * float64(stock.Shares)
			mu.Lock()
			total += gain
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return roundTwo(total), nil
}
