package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yshpitzer/portfolio-services/internal/apperrors"
	"github.com/yshpitzer/portfolio-services/internal/model"
	"github.com/yshpitzer/portfolio-services/internal/pricing"
	"github.com/yshpitzer/portfolio-services/internal/repository"
	"github.com/yshpitzer/portfolio-services/internal/validation"
)

// StockService handles stock CRUD and valuation business logic.
type StockService struct {
	repo   *repository.StockRepository
	oracle pricing.Oracle
	log    zerolog.Logger
}

// NewStockService creates a new StockService with the provided dependencies.
func NewStockService(repo *repository.StockRepository, oracle pricing.Oracle, log zerolog.Logger) *StockService {
	return &StockService{
		repo:   repo,
		oracle: oracle,
		log:    log,
	}
}

// CreateStock validates the payload, enforces symbol uniqueness, assigns a
// new ID and persists the stock. The stored purchase price is rounded to 2
// decimal places.
func (s *StockService) CreateStock(ctx context.Context, payload map[string]any) (model.Stock, error) {
	if err := validation.ValidateStockPayload(payload, validation.ModeCreate); err != nil {
		return model.Stock{}, err
	}

	stock := stockFromPayload(payload)

	exists, err := s.repo.SymbolExists(ctx, stock.Symbol, "")
	if err != nil {
		return model.Stock{}, fmt.Errorf("failed to check for duplicate symbol: %w", err)
	}
	if exists {
		return model.Stock{}, fmt.Errorf("%w: %s already exists", apperrors.ErrDuplicateSymbol, stock.Symbol)
	}

	stock.ID = uuid.NewString()
	stock.PurchasePrice = roundTwo(stock.PurchasePrice)

	if err := s.repo.Create(ctx, stock); err != nil {
		return model.Stock{}, err
	}

	return stock, nil
}

// GetStock retrieves a single stock by ID.
func (s *StockService) GetStock(ctx context.Context, id string) (model.Stock, error) {
	return s.repo.GetByID(ctx, id)
}

// ListStocks retrieves stocks, optionally narrowed by field-equality filters.
// Filter values match the stringified field value case-insensitively.
func (s *StockService) ListStocks(ctx context.Context, filters map[string]string) ([]model.Stock, error) {
	return s.repo.ListByFields(ctx, filters)
}

// ReplaceStock validates a full replacement payload and overwrites the stock
// with the given ID. The payload ID must equal the path ID, and the symbol
// must not collide with any other stock.
func (s *StockService) ReplaceStock(ctx context.Context, id string, payload map[string]any) (model.Stock, error) {
	// Existence first: a replace of an unknown ID is not-found, regardless
	// of what the payload looks like.
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return model.Stock{}, err
	}

	if err := validation.ValidateStockPayload(payload, validation.ModeReplace); err != nil {
		return model.Stock{}, err
	}

	stock := stockFromPayload(payload)
	if stock.ID != id {
		return model.Stock{}, apperrors.ErrIDImmutable
	}

	exists, err := s.repo.SymbolExists(ctx, stock.Symbol, id)
	if err != nil {
		return model.Stock{}, fmt.Errorf("failed to check for duplicate symbol: %w", err)
	}
	if exists {
		return model.Stock{}, fmt.Errorf("%w: %s already exists", apperrors.ErrDuplicateSymbol, stock.Symbol)
	}

	stock.PurchasePrice = roundTwo(stock.PurchasePrice)

	if err := s.repo.Update(ctx, stock); err != nil {
		return model.Stock{}, err
	}

	return stock, nil
}

// DeleteStock removes a stock by ID.
func (s *StockService) DeleteStock(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// StockValuation is the current market value of a single holding.
type StockValuation struct {
	Symbol string
	Price  float64
	Value  float64
}

// StockValue fetches the live price for one holding and computes its current
// value. Unlike portfolio aggregation there are no skip semantics here: a
// missing price fails the whole single-item request.
func (s *StockService) StockValue(ctx context.Context, id string) (StockValuation, error) {
	stock, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return StockValuation{}, err
	}

	quote, err := s.oracle.PriceOf(ctx, stock.Symbol)
	if err != nil {
		return StockValuation{}, err
	}

	return StockValuation{
		Symbol: stock.Symbol,
		Price:  quote.Price,
		Value:  float64(stock.Shares) * quote.Price,
	}, nil
}

// PortfolioValue sums the current value of every holding, fetching prices
// concurrently. All-or-nothing: if any lookup fails the whole operation
// fails rather than silently understating the total.
func (s *StockService) PortfolioValue(ctx context.Context) (float64, error) {
	stocks, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	values := make([]float64, len(stocks))
	g, gctx := errgroup.WithContext(ctx)
	for i, stock := range stocks {
		g.Go(func() error {
			quote, err := s.oracle.PriceOf(gctx, stock.Symbol)
			if err != nil {
				return err
			}
			values[i] = float64(stock.Shares) * quote.Price
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0.0
	for _, v := range values {
		total += v
	}
	return roundTwo(total), nil
}

// stockFromPayload builds a Stock from a validated payload, applying the NA
// defaults for the optional fields.
func stockFromPayload(payload map[string]any) model.Stock {
	stock := model.Stock{
		Name:         "NA",
		PurchaseDate: "NA",
	}

	if id, ok := payload["id"].(string); ok {
		stock.ID = id
	}
	if symbol, ok := payload["symbol"].(string); ok {
		stock.Symbol = symbol
	}
	if name, ok := payload["name"].(string); ok {
		stock.Name = name
	}
	if date, ok := payload["purchase date"].(string); ok {
		stock.PurchaseDate = date
	}
	if price, ok := payload["purchase price"].(float64); ok {
		stock.PurchasePrice = price
	}
	if shares, ok := payload["shares"].(float64); ok {
		stock.Shares = int(shares)
	}

	return stock
}
