// Package response provides utilities for sending consistent HTTP responses.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// RespondJSON sends a JSON response with the given status code.
// If data is nil, only the status code is sent (useful for 204 No Content).
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError sends a classified error body: {"error": message}.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"error": message})
}

// RespondServerError sends the unclassified-fault body: {"server error": message}.
func RespondServerError(w http.ResponseWriter, err error) {
	RespondJSON(w, http.StatusInternalServerError, map[string]string{"server error": err.Error()})
}
