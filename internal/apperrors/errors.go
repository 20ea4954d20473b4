package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
var (
	// ErrStockNotFound indicates that a stock with the given ID does not exist.
	ErrStockNotFound = errors.New("stock not found")
)

// Business logic errors represent constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrDuplicateSymbol indicates that another stock with the same ticker
	// symbol already exists.
	ErrDuplicateSymbol = errors.New("duplicate stock entry")

	// ErrIDImmutable indicates that a replace payload carries an ID different
	// from the one addressed by the request path.
	ErrIDImmutable = errors.New("id cannot be changed")
)

// Upstream errors represent failures of external collaborators. They are
// converted to HTTP statuses at the handler boundary and never retried here.
var (
	// ErrPriceUnavailable indicates that the price API answered but carried
	// no usable price for the symbol. This is a business-level absence of
	// data, distinct from a transport fault.
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrStocksServiceUnavailable indicates that the stocks record service
	// could not be reached or answered with a non-success status.
	ErrStocksServiceUnavailable = errors.New("stocks service unavailable")

	// ErrMalformedStocksResponse indicates that the stocks record service
	// answered successfully but with a body that is not a stock collection.
	ErrMalformedStocksResponse = errors.New("malformed stocks service response")
)
