package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsgen/internal/core"
)

// handleListHistory handles GET /api/history.
func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{"history": s.history.List()})
}

// handleGetHistory handles GET /api/history/{id}.
func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	record, ok := s.history.Get(id)
	if !ok {
		s.respondError(w, http.StatusNotFound, "history record not found")
		return
	}
	s.respondJSON(w, http.StatusOK, record)
}

// handleDeleteHistoryItem handles DELETE /api/history/{id}. Deleting an
// absent id succeeds.
func (s *Server) handleDeleteHistoryItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.history.DeleteByID(id); err != nil {
		s.log.Error("Failed to delete history record", "id", id, "error", err)
		s.respondError(w, http.StatusInternalServerError, "failed to delete history record")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleDeleteHistory handles DELETE /api/history. With ?type=title|news it
// removes only records of that type; without it, the whole history.
func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	recordType := r.URL.Query().Get("type")

	switch recordType {
	case "":
		if err := s.history.Clear(); err != nil {
			s.log.Error("Failed to clear history", "error", err)
			s.respondError(w, http.StatusInternalServerError, "failed to clear history")
			return
		}
	case core.RecordTypeTitle, core.RecordTypeNews:
		if err := s.history.DeleteByType(recordType); err != nil {
			s.log.Error("Failed to delete history by type", "type", recordType, "error", err)
			s.respondError(w, http.StatusInternalServerError, "failed to delete history records")
			return
		}
	default:
		s.respondError(w, http.StatusBadRequest, `type must be "title" or "news"`)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
