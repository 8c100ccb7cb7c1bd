package server

import (
	"encoding/json"
	"net/http"

	"newsgen/internal/publish"
)

// PublishRequest is the body of POST /api/publish/wordpress. Credentials are
// forwarded to the target site and never persisted or logged.
type PublishRequest struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Status   string `json:"status"`
}

// handlePublishWordPress handles POST /api/publish/wordpress.
func (s *Server) handlePublishWordPress(w http.ResponseWriter, r *http.Request) {
	var req PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.publisher.Publish(r.Context(),
		publish.Credentials{URL: req.URL, Username: req.Username, Password: req.Password},
		publish.Post{Title: req.Title, Content: req.Content, Status: req.Status},
	)
	if err != nil {
		s.respondFailure(w, "publish", err)
		return
	}

	s.respondJSON(w, http.StatusOK, result)
}
