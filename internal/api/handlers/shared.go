package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/yshpitzer/portfolio-services/internal/api/response"
	"github.com/yshpitzer/portfolio-services/internal/apperrors"
	"github.com/yshpitzer/portfolio-services/internal/validation"
)

// decodeJSONBody enforces the JSON content type and decodes the request body
// into a raw payload map. A non-JSON content type yields 415; a body that is
// not valid JSON yields 400. Returns false if a response was already written.
func decodeJSONBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		response.RespondError(w, http.StatusUnsupportedMediaType, "Unsupported Media Type")
		return nil, false
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Malformed JSON body")
		return nil, false
	}

	return payload, true
}

// writeStockError maps service-layer errors to HTTP responses per the error
// taxonomy: validation and conflicts are 400, missing entities 404, price
// failures 500, anything else an unclassified 500.
func writeStockError(w http.ResponseWriter, err error) {
	var verr *validation.Error

	switch {
	case errors.As(err, &verr):
		response.RespondError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, apperrors.ErrStockNotFound):
		response.RespondError(w, http.StatusNotFound, "Stock not found")
	case errors.Is(err, apperrors.ErrDuplicateSymbol), errors.Is(err, apperrors.ErrIDImmutable):
		response.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrPriceUnavailable):
		response.RespondError(w, http.StatusInternalServerError, "Failed to fetch ticker price")
	default:
		response.RespondServerError(w, err)
	}
}
