package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 10 * time.Second

// Server is the webhook receiver HTTP server.
type Server struct {
	addr       string
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer wires the handler and an optional metrics handler into a
// router and returns a server ready to run.
func NewServer(addr string, handler *Handler, metricsHandler http.Handler) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", handler.HandleHealth)
	r.Post("/", handler.HandleEvent)
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	return &Server{
		addr: addr,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: slog.Default(),
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	s.logger.Info("webhook server listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received, stopping webhook server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down webhook server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("webhook server stopped with error: %w", err)
		}
	}
	return nil
}
