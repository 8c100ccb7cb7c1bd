// Package server exposes the generation, history, and publishing endpoints
// and orchestrates each request through its
// validate -> build prompt -> generate -> parse -> respond stages.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"newsgen/internal/config"
	"newsgen/internal/history"
	"newsgen/internal/llm"
	"newsgen/internal/logger"
	"newsgen/internal/publish"
)

// Server represents the HTTP server.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	generator  llm.Generator // nil until a Gemini key is configured
	history    *history.Store
	publisher  *publish.Publisher
	cfg        *config.Config
	log        *slog.Logger
}

// New creates a new HTTP server instance. generator may be nil when no
// backend credential is configured; generation endpoints then fail fast with
// a configuration error instead of attempting a call.
func New(cfg *config.Config, generator llm.Generator, historyStore *history.Store, publisher *publish.Publisher) *Server {
	log := logger.Get()

	s := &Server{
		router:    chi.NewRouter(),
		generator: generator,
		history:   historyStore,
		publisher: publisher,
		cfg:       cfg,
		log:       log,
	}

	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

// setupMiddleware configures middleware for the server.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	// Wide enough for the slowest race tier (270s) plus margin; a timed-out
	// write on a closed connection must not crash the orchestrator.
	s.router.Use(middleware.Timeout(300 * time.Second))

	if s.cfg.Server.CORS.Enabled {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.cfg.Server.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
}

// setupRoutes configures routes for the server.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/api/status", s.handleStatus)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/generate-titles", s.handleGenerateTitles)
		r.Post("/generate-news", s.handleGenerateNews)

		r.Get("/categories", s.handleListCategories)
		r.Get("/models", s.handleListModels)

		r.Route("/history", func(r chi.Router) {
			r.Get("/", s.handleListHistory)
			r.Delete("/", s.handleDeleteHistory)
			r.Get("/{id}", s.handleGetHistory)
			r.Delete("/{id}", s.handleDeleteHistoryItem)
		})

		r.Post("/publish/wordpress", s.handlePublishWordPress)
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.log.Info("Starting HTTP server",
		"addr", s.httpServer.Addr,
		"read_timeout", s.cfg.Server.ReadTimeout,
		"write_timeout", s.cfg.Server.WriteTimeout,
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed to start: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server gracefully...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("HTTP server stopped")
	return nil
}

// Router returns the chi router instance (useful for testing).
func (s *Server) Router() *chi.Mux {
	return s.router
}
