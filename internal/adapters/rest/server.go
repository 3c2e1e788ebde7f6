package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"salvage-bidding-service/internal/config"

	"github.com/rs/zerolog"
)

// Server wraps the REST gateway's HTTP listener
type Server struct {
	httpServer *http.Server
	config     *config.Config
	logger     zerolog.Logger
}

type ServerParams struct {
	Config *config.Config
	Router http.Handler
	Logger zerolog.Logger
}

// NewServer creates a new REST server
func NewServer(params ServerParams) *Server {
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", params.Config.Server.HTTPPort),
		Handler:      params.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		config:     params.Config,
		logger:     params.Logger,
	}
}

// Start starts the REST server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Server.HTTPPort).Msg("Starting REST server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start REST server: %w", err)
	}

	return nil
}

// Stop gracefully stops the REST server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info().Msg("Stopping REST server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown REST server: %w", err)
	}

	s.logger.Info().Msg("REST server stopped")
	return nil
}
