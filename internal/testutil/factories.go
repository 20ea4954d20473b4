package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/yshpitzer/portfolio-services/internal/model"
)

// StockBuilder provides a fluent interface for creating test stocks.
//
// Example usage:
//
//	// Simple creation with defaults
//	stock := testutil.NewStock().Build(t, db)
//
//	// Customized stock
//	stock := testutil.NewStock().
//	    WithSymbol("MSFT").
//	    WithShares(25).
//	    Build(t, db)
type StockBuilder struct {
	stock model.Stock
}

// NewStock creates a StockBuilder with sensible defaults.
func NewStock() *StockBuilder {
	return &StockBuilder{
		stock: model.Stock{
			ID:            uuid.NewString(),
			Symbol:        "AAPL",
			Name:          "Apple Inc.",
			PurchasePrice: 150.00,
			Shares:        10,
			PurchaseDate:  "01-06-2024",
		},
	}
}

// WithID sets a custom ID.
func (b *StockBuilder) WithID(id string) *StockBuilder {
	b.stock.ID = id
	return b
}

// WithSymbol sets a custom ticker symbol.
func (b *StockBuilder) WithSymbol(symbol string) *StockBuilder {
	b.stock.Symbol = symbol
	return b
}

// WithName sets a custom company name.
func (b *StockBuilder) WithName(name string) *StockBuilder {
	b.stock.Name = name
	return b
}

// WithPurchasePrice sets a custom purchase price.
func (b *StockBuilder) WithPurchasePrice(price float64) *StockBuilder {
	b.stock.PurchasePrice = price
	return b
}

// WithShares sets a custom share count.
func (b *StockBuilder) WithShares(shares int) *StockBuilder {
	b.stock.Shares = shares
	return b
}

// WithPurchaseDate sets a custom purchase date.
func (b *StockBuilder) WithPurchaseDate(date string) *StockBuilder {
	b.stock.PurchaseDate = date
	return b
}

// Stock returns the built stock without persisting it.
func (b *StockBuilder) Stock() model.Stock {
	return b.stock
}

// Build inserts the stock into the test database and returns it.
func (b *StockBuilder) Build(t *testing.T, db *sql.DB) model.Stock {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO stock (id, symbol, name, purchase_price, shares, purchase_date) VALUES (?, ?, ?, ?, ?, ?)`,
		b.stock.ID,
		b.stock.Symbol,
		b.stock.Name,
		b.stock.PurchasePrice,
		b.stock.Shares,
		b.stock.PurchaseDate,
	)
	if err != nil {
		t.Fatalf("Failed to insert test stock: %v", err)
	}

	return b.stock
}
