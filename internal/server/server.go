// Package server wraps http.Server with the standard middleware chain:
// panic recovery, request IDs, request logging and CORS.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/justinas/alice"
	"github.com/rs/cors"
)

type Server struct {
	cfg        Config
	httpServer *http.Server
}

// New wraps the handler with the middleware chain and prepares the
// listener. Start must be called to begin serving.
func New(cfg Config, handler http.Handler) *Server {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	})

	chain := alice.New(
		recoverPanic,
		requestID,
		logRequest,
		corsHandler.Handler,
	).Then(handler)

	return &Server{
		cfg: cfg,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      chain,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Start blocks serving HTTP until the listener fails or Shutdown is
// called. A closed-server error is not reported as a failure.
func (s *Server) Start() error {
	slog.Info("Starting HTTP server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Shutdown drains active connections until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
