package handlers

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/yshpitzer/portfolio-services/internal/api/response"
	"github.com/yshpitzer/portfolio-services/internal/database"
)

// SystemHandler handles operational endpoints.
type SystemHandler struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(db *sql.DB, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{db: db, log: log}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := database.HealthCheck(h.db); err != nil {
		response.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	response.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}

// Kill handles GET /kill: terminates the process with a non-zero exit code.
// Used to drill container-failure recovery in the deployment.
func (h *SystemHandler) Kill(w http.ResponseWriter, r *http.Request) {
	h.log.Warn().Msg("kill endpoint hit, terminating")
	os.Exit(1)
}
