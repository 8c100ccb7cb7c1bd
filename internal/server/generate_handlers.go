package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"newsgen/internal/catalog"
	"newsgen/internal/core"
	"newsgen/internal/llm"
	"newsgen/internal/parse"
	"newsgen/internal/prompt"
)

// TitlesResponse is the success payload of POST /api/generate-titles.
type TitlesResponse struct {
	Titles []string `json:"titles"`
}

// NewsResponse is the success payload of POST /api/generate-news.
type NewsResponse struct {
	Result string `json:"result"`
}

// handleGenerateTitles handles POST /api/generate-titles. Policy: sequential
// retries with fixed delay, each attempt under a single timeout; after a
// parse that yields nothing, one extra round with a simplified prompt.
func (s *Server) handleGenerateTitles(w http.ResponseWriter, r *http.Request) {
	var req core.TitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Topic) == "" {
		s.respondFailure(w, "validate", core.NewValidationError("topic", "is required"))
		return
	}
	if s.generator == nil {
		s.respondFailure(w, "validate", core.NewConfigurationError("gemini API key is not configured"))
		return
	}

	// Unknown category ids proceed with an empty category context. The title
	// prompt embeds the category's prompt fragment, not its display name.
	categoryPrompt := ""
	if cat, ok := catalog.CategoryByID(req.Category); ok {
		categoryPrompt = cat.Prompt
	}
	model := catalog.ResolveModelID(req.Model)

	count := req.Count
	if count <= 0 {
		count = prompt.DefaultTitleCount
	}

	build, err := prompt.BuildTitlePrompt(req.Topic, categoryPrompt, count)
	if err != nil {
		s.respondFailure(w, "build_prompt", err)
		return
	}

	raw, err := s.generateWithRetry(r, model, build)
	if err != nil {
		s.respondFailure(w, "generate", err)
		return
	}

	titles := parse.Titles(raw)
	if len(titles) == 0 {
		// One-shot degenerate-output recovery: retry once with a plain
		// instruction carrying no structural constraints.
		fallback := prompt.BuildTitleFallbackPrompt(req.Topic, count)
		raw, err = s.generateWithRetry(r, model, fallback)
		if err != nil {
			s.respondFailure(w, "generate_fallback", err)
			return
		}
		titles = parse.Titles(raw)
	}

	if len(titles) == 0 {
		// Quiet partial success: both rounds produced nothing usable, and the
		// endpoint still answers 200 with an empty list.
		s.log.Warn("Title generation produced no usable lines after fallback",
			"topic", req.Topic, "model", model)
	}

	s.saveHistory(core.HistoryRecord{
		Type:     core.RecordTypeTitle,
		Content:  strings.Join(titles, "\n"),
		Topic:    req.Topic,
		Category: req.Category,
		Model:    model,
	})

	s.respondJSON(w, http.StatusOK, TitlesResponse{Titles: titles})
}

// handleGenerateNews handles POST /api/generate-news. Policy: parallel
// attempts at escalating timeouts, first success wins.
func (s *Server) handleGenerateNews(w http.ResponseWriter, r *http.Request) {
	var req core.NewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		s.respondFailure(w, "validate", core.NewValidationError("title", "is required"))
		return
	}
	if s.generator == nil {
		s.respondFailure(w, "validate", core.NewConfigurationError("gemini API key is not configured"))
		return
	}

	categoryName := ""
	if cat, ok := catalog.CategoryByID(req.Category); ok {
		categoryName = cat.Name
	}
	model := catalog.ResolveModelID(req.Model)

	build, err := prompt.BuildNewsPrompt(req.Title, categoryName, req.Style, req.Audience, req.Tone)
	if err != nil {
		s.respondFailure(w, "build_prompt", err)
		return
	}

	payload := llm.Payload{
		Model:             model,
		Prompt:            build.Prompt,
		SystemInstruction: build.SystemInstruction,
		Options:           llm.NewsOptions(),
	}

	raw, err := llm.Race(r.Context(), s.cfg.Generation.RaceTiers, func(ctx context.Context) (string, error) {
		return s.generator.GenerateText(ctx, payload)
	})
	if err != nil {
		s.respondFailure(w, "generate", err)
		return
	}

	result := parse.Article(raw)

	s.saveHistory(core.HistoryRecord{
		Type:     core.RecordTypeNews,
		Content:  result,
		Title:    req.Title,
		Category: req.Category,
		Model:    model,
	})

	s.respondJSON(w, http.StatusOK, NewsResponse{Result: result})
}

// generateWithRetry runs one prompt build under the titles endpoint policy:
// each attempt bounded by the configured timeout, retried with fixed delay.
func (s *Server) generateWithRetry(r *http.Request, model string, build core.PromptBuild) (string, error) {
	payload := llm.Payload{
		Model:             model,
		Prompt:            build.Prompt,
		SystemInstruction: build.SystemInstruction,
		Options:           llm.TitleOptions(),
	}

	gen := s.cfg.Generation
	return llm.WithRetry(r.Context(), gen.MaxRetries, gen.RetryDelay, func(ctx context.Context) (string, error) {
		return llm.WithTimeout(ctx, gen.Timeout, func(ctx context.Context) (string, error) {
			return s.generator.GenerateText(ctx, payload)
		})
	})
}

// saveHistory records a successful generation; persistence failures degrade
// to a log entry rather than failing the response.
func (s *Server) saveHistory(record core.HistoryRecord) {
	full := core.NewHistoryRecord(record.Type, record.Content)
	full.Topic = record.Topic
	full.Title = record.Title
	full.Category = record.Category
	full.Model = record.Model

	if err := s.history.Save(full); err != nil {
		s.log.Warn("Failed to save history record", "type", record.Type, "error", err)
	}
}
