package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/yshpitzer/portfolio-services/internal/api/response"
	"github.com/yshpitzer/portfolio-services/internal/apperrors"
	"github.com/yshpitzer/portfolio-services/internal/service"
	"github.com/yshpitzer/portfolio-services/internal/validation"
)

// GainsHandler handles HTTP requests for the capital-gains service.
type GainsHandler struct {
	gainsService *service.GainsService
	log          zerolog.Logger
}

// NewGainsHandler creates a new GainsHandler with the provided service dependency.
func NewGainsHandler(gainsService *service.GainsService, log zerolog.Logger) *GainsHandler {
	return &GainsHandler{
		gainsService: gainsService,
		log:          log,
	}
}

// CapitalGains handles GET /capital-gains with optional numsharesgt and
// numshareslt bounds.
//
// Response: 200 OK with {"capital_gains": <rounded number>}
// Errors: 400 invalid params, 503 stocks fetch failed, 500 otherwise
func (h *GainsHandler) CapitalGains(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var verr *validation.Error
	if err := validation.CapitalGainsParams.Validate(query); err != nil {
		if errors.As(err, &verr) {
			response.RespondError(w, http.StatusBadRequest, verr.Message)
			return
		}
		response.RespondServerError(w, err)
		return
	}

	criteria := validation.ParseFilterCriteria(query)

	total, err := h.gainsService.CapitalGains(r.Context(), criteria)
	if err != nil {
		if errors.Is(err, apperrors.ErrStocksServiceUnavailable) {
			h.log.Error().Err(err).Msg("stocks service fetch failed")
			response.RespondError(w, http.StatusServiceUnavailable, "Failed to fetch stocks from stocks service")
			return
		}
		if errors.Is(err, apperrors.ErrMalformedStocksResponse) {
			h.log.Error().Err(err).Msg("stocks service returned an unexpected shape")
			response.RespondError(w, http.StatusInternalServerError, "Unexpected response from stocks service")
			return
		}
		h.log.Error().Err(err).Msg("capital gains computation failed")
		response.RespondServerError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]float64{"capital_gains": total})
}
