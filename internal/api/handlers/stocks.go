package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/yshpitzer/portfolio-services/internal/api/response"
	"github.com/yshpitzer/portfolio-services/internal/service"
	"github.com/yshpitzer/portfolio-services/internal/validation"
)

// StockHandler handles HTTP requests for the stock CRUD endpoints.
// It parses requests and delegates business logic to the StockService.
type StockHandler struct {
	stockService *service.StockService
	log          zerolog.Logger
}

// NewStockHandler creates a new StockHandler with the provided service dependency.
func NewStockHandler(stockService *service.StockService, log zerolog.Logger) *StockHandler {
	return &StockHandler{
		stockService: stockService,
		log:          log,
	}
}

// CreateStock handles POST /stocks.
//
// Response: 201 Created with {"id": <new id>}
// Errors: 400 validation/duplicate symbol, 415 non-JSON body
func (h *StockHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeJSONBody(w, r)
	if !ok {
		return
	}

	stock, err := h.stockService.CreateStock(r.Context(), payload)
	if err != nil {
		writeStockError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, map[string]string{"id": stock.ID})
}

// ListStocks handles GET /stocks (and the /stocks1, /stocks2 read aliases).
// Optional query parameters narrow the result by case-insensitive
// field-equality match against the stringified field value.
//
// Response: 200 OK with an array of stocks
// Errors: 400 invalid query key
func (h *StockHandler) ListStocks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if err := validation.StockListParams.Validate(query); err != nil {
		writeStockError(w, err)
		return
	}

	filters := make(map[string]string, len(query))
	for key := range query {
		filters[key] = query.Get(key)
	}

	stocks, err := h.stockService.ListStocks(r.Context(), filters)
	if err != nil {
		writeStockError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, stocks)
}

// GetStock handles GET /stocks/{id}.
//
// Response: 200 OK with the stock
// Errors: 404 not found
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	stock, err := h.stockService.GetStock(r.Context(), id)
	if err != nil {
		writeStockError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, stock)
}

// UpdateStock handles PUT /stocks/{id} with a full replacement payload.
//
// Response: 200 OK with {"id": id}
// Errors: 400 validation/id mismatch/duplicate symbol, 404 not found, 415 non-JSON
func (h *StockHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payload, ok := decodeJSONBody(w, r)
	if !ok {
		return
	}

	stock, err := h.stockService.ReplaceStock(r.Context(), id, payload)
	if err != nil {
		writeStockError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"id": stock.ID})
}

// DeleteStock handles DELETE /stocks/{id}.
//
// Response: 204 No Content
// Errors: 404 not found
func (h *StockHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.stockService.DeleteStock(r.Context(), id); err != nil {
		writeStockError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
