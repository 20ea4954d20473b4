package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/yshpitzer/portfolio-services/internal/apperrors"
	"github.com/yshpitzer/portfolio-services/internal/model"
)

// QueryableFields maps the query-string keys accepted by the listing endpoint
// to their stock table columns. Keys outside this map never reach the
// repository; the validation layer rejects them first.
var QueryableFields = map[string]string{
	"id":             "id",
	"name":           "name",
	"symbol":         "symbol",
	"purchase price": "purchase_price",
	"purchase date":  "purchase_date",
	"shares":         "shares",
}

// StockRepository provides data access methods for the stock table.
type StockRepository struct {
	db *sql.DB
}

// NewStockRepository creates a new StockRepository with the provided database connection.
func NewStockRepository(db *sql.DB) *StockRepository {
	return &StockRepository{db: db}
}

const stockColumns = "id, symbol, name, purchase_price, shares, purchase_date"

// Create inserts a new stock record.
func (r *StockRepository) Create(ctx context.Context, stock model.Stock) error {
	query := `
		INSERT INTO stock (id, symbol, name, purchase_price, shares, purchase_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		stock.ID,
		stock.Symbol,
		stock.Name,
		stock.PurchasePrice,
		stock.Shares,
		stock.PurchaseDate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert stock: %w", err)
	}

	return nil
}

// GetByID retrieves a single stock by its ID.
// Returns apperrors.ErrStockNotFound if no record exists.
func (r *StockRepository) GetByID(ctx context.Context, id string) (model.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE id = ?`

	var s model.Stock
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID,
		&s.Symbol,
		&s.Name,
		&s.PurchasePrice,
		&s.Shares,
		&s.PurchaseDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Stock{}, apperrors.ErrStockNotFound
	}
	if err != nil {
		return model.Stock{}, fmt.Errorf("failed to query stock: %w", err)
	}

	return s, nil
}

// GetAll retrieves all stock records.
// Returns an empty slice if no stocks are found.
func (r *StockRepository) GetAll(ctx context.Context) ([]model.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock`
	return r.queryStocks(ctx, query)
}

// ListByFields retrieves the stocks whose stringified column values match all
// given filters case-insensitively. Filter keys must come from QueryableFields.
func (r *StockRepository) ListByFields(ctx context.Context, filters map[string]string) ([]model.Stock, error) {
	if len(filters) == 0 {
		return r.GetAll(ctx)
	}

	var clauses []string
	var args []any
	for key, value := range filters {
		column, ok := QueryableFields[key]
		if !ok {
			return nil, fmt.Errorf("unknown query field: %s", key)
		}
		clauses = append(clauses, fmt.Sprintf("LOWER(CAST(%s AS TEXT)) = LOWER(?)", column))
		args = append(args, value)
	}

	//#nosec G202 -- Safe: column names come from the QueryableFields whitelist, values are bound parameters
	query := `SELECT ` + stockColumns + ` FROM stock WHERE ` + strings.Join(clauses, " AND ")
	return r.queryStocks(ctx, query, args...)
}

// Update replaces all mutable fields of an existing stock.
// Returns apperrors.ErrStockNotFound if no record exists.
func (r *StockRepository) Update(ctx context.Context, stock model.Stock) error {
	query := `
		UPDATE stock
		SET symbol = ?, name = ?, purchase_price = ?, shares = ?, purchase_date = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		stock.Symbol,
		stock.Name,
		stock.PurchasePrice,
		stock.Shares,
		stock.PurchaseDate,
		stock.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStockNotFound
	}

	return nil
}

// Delete removes a stock by ID.
// Returns apperrors.ErrStockNotFound if no record exists.
func (r *StockRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stock WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStockNotFound
	}

	return nil
}

// SymbolExists reports whether a stock with the given symbol exists,
// excluding the record with excludeID. Pass an empty excludeID when creating.
func (r *StockRepository) SymbolExists(ctx context.Context, symbol, excludeID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM stock WHERE symbol = ? AND id <> ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, symbol, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check symbol existence: %w", err)
	}

	return exists, nil
}

func (r *StockRepository) queryStocks(ctx context.Context, query string, args ...any) ([]model.Stock, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock table: %w", err)
	}
	defer rows.Close()

	stocks := []model.Stock{}

	for rows.Next() {
		var s model.Stock
		err := rows.Scan(
			&s.ID,
			&s.Symbol,
			&s.Name,
			&s.PurchasePrice,
			&s.Shares,
			&s.PurchaseDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock table results: %w", err)
		}
		stocks = append(stocks, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock table: %w", err)
	}

	return stocks, nil
}
