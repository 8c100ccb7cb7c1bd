package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"newsgen/internal/config"
	"newsgen/internal/core"
	"newsgen/internal/history"
	"newsgen/internal/llm"
	"newsgen/internal/logger"
	"newsgen/internal/publish"
	"newsgen/internal/server"
	"newsgen/internal/store"
)

// newServeCmd creates the serve command for starting the HTTP server.
func newServeCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the newsgen web server.

The server provides:
  - POST /api/generate-titles and /api/generate-news generation endpoints
  - History API for browsing and pruning past generations
  - WordPress publishing endpoint
  - Health and status endpoints

Examples:
  # Start server on default port 8080
  newsgen serve

  # Start on a custom port
  newsgen serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port, host)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "HTTP server port (default from config: 8080)")
	cmd.Flags().StringVar(&host, "host", "", "HTTP server host (default from config: 0.0.0.0)")

	return cmd
}

func runServe(ctx context.Context, port int, host string) error {
	log := logger.Get()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}

	// A missing Gemini key keeps the server usable (history, publish); the
	// generation endpoints fail fast with a configuration error until the
	// key is provided.
	var generator llm.Generator
	client, err := llm.NewClient(ctx, cfg.AI.Gemini.APIKey)
	switch {
	case err == nil:
		generator = client
	case core.IsConfiguration(err):
		log.Warn("Gemini is not configured; generation endpoints will fail fast", "error", err)
	default:
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	kv, err := store.Open(cfg.History.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer kv.Close()

	srv := server.New(cfg, generator, history.NewStore(kv), publish.New(nil))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info("Received shutdown signal", "signal", sig.String())
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
