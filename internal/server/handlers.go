package server

import (
	"encoding/json"
	"net/http"
	"time"

	"newsgen/internal/catalog"
	"newsgen/internal/core"
	"newsgen/internal/history"
)

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// StatusResponse is the /api/status payload.
type StatusResponse struct {
	Version      string `json:"version"`
	Uptime       string `json:"uptime"`
	GeminiReady  bool   `json:"gemini_ready"`
	HistoryCount int    `json:"history_count"`
	HistoryLimit int    `json:"history_limit"`
}

var serverStartTime = time.Now()

// handleHealth handles the /health endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{
		"gemini": "ok",
	}
	status := "ok"
	if s.generator == nil {
		checks["gemini"] = "unconfigured"
		status = "degraded"
	}

	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status: status,
		Checks: checks,
	})
}

// handleStatus handles the /api/status endpoint.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, StatusResponse{
		Version:      "v1.0.0",
		Uptime:       time.Since(serverStartTime).String(),
		GeminiReady:  s.generator != nil,
		HistoryCount: len(s.history.List()),
		HistoryLimit: history.MaxEntries,
	})
}

// handleListCategories handles GET /api/categories.
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{"categories": catalog.Categories()})
}

// handleListModels handles GET /api/models.
func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{"models": catalog.Models()})
}

// respondJSON writes a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError writes a JSON error payload. Messages carry no credentials or
// stack traces.
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// statusForError maps the error taxonomy to response classes: validation is
// client error, exhausted timeouts and backend failures are gateway timeout,
// everything else (configuration included) is internal.
func statusForError(err error) int {
	switch {
	case core.IsValidation(err):
		return http.StatusBadRequest
	case core.IsTimeout(err), core.IsBackend(err):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// respondFailure logs the failure and writes the mapped error response.
func (s *Server) respondFailure(w http.ResponseWriter, stage string, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("Request failed", "stage", stage, "status", status, "error", err)
	} else {
		s.log.Warn("Request rejected", "stage", stage, "status", status, "error", err)
	}
	s.respondError(w, status, err.Error())
}
