package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yshpitzer/portfolio-services/internal/api/response"
	"github.com/yshpitzer/portfolio-services/internal/apperrors"
)

// StockValue handles GET /stock-value/{id}: the point-in-time market value of
// a single holding. A failed price lookup is a hard failure here, not a skip.
//
// Response: 200 OK with {"symbol", "ticker", "stock value"}
// Errors: 404 not found, 500 price lookup failure
func (h *StockHandler) StockValue(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	valuation, err := h.stockService.StockValue(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStockNotFound) {
			response.RespondError(w, http.StatusNotFound, "Stock not found")
			return
		}
		h.log.Error().Err(err).Str("id", id).Msg("stock value lookup failed")
		response.RespondError(w, http.StatusInternalServerError, "Failed to fetch ticker price")
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]any{
		"symbol":      valuation.Symbol,
		"ticker":      valuation.Price,
		"stock value": valuation.Value,
	})
}

// PortfolioValue handles GET /portfolio-value: the summed market value of all
// holdings. If any price lookup fails the whole request fails; a partial sum
// would silently understate the portfolio.
//
// Response: 200 OK with {"date": "dd-mm-yyyy", "portfolio value": <rounded>}
// Errors: 500 on any price lookup failure
func (h *StockHandler) PortfolioValue(w http.ResponseWriter, r *http.Request) {
	total, err := h.stockService.PortfolioValue(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("portfolio valuation failed")
		response.RespondError(w, http.StatusInternalServerError, "Failed to fetch ticker price")
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]any{
		"date":            time.Now().Format("02-01-2006"),
		"portfolio value": total,
	})
}
