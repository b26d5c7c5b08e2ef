package api

import (
	"net/http"

	"github.com/readmateapp/readmate-server/internal/http/response"
)

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealthCheck reports that the server is up.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	response.Success(w, HealthResponse{Status: "ok"}, s.logger)
}
