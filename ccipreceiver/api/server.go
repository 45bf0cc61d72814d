package api

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Server provides HTTP endpoints
type Server struct {
	logger   zerolog.Logger
	server   *http.Server
	receiver ReceiverQuerier
	accounts AccountQuerier
	gatherer prometheus.Gatherer
	now      func() time.Time
}

// NewServer creates a new Server instance. accounts and gatherer may be nil,
// which disables the account and metrics endpoints.
func NewServer(
	logger zerolog.Logger,
	port int,
	receiver ReceiverQuerier,
	accounts AccountQuerier,
	gatherer prometheus.Gatherer,
) (*Server, error) {
	if receiver == nil {
		return nil, fmt.Errorf("receiver cannot be nil")
	}

	s := &Server{
		logger:   logger.With().Str("component", "query_server").Logger(),
		receiver: receiver,
		accounts: accounts,
		gatherer: gatherer,
		now:      time.Now,
	}

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.setupRoutes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Handler returns the server's HTTP handler
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	if s.server == nil {
		return fmt.Errorf("query server is nil")
	}

	// Channel to signal server startup result
	startupChan := make(chan error, 1)

	go func() {
		ln, err := net.Listen("tcp", s.server.Addr)
		if err != nil {
			startupChan <- fmt.Errorf("failed to bind to address %s: %w", s.server.Addr, err)
			return
		}

		startupChan <- nil

		err = s.server.Serve(ln)
		switch err {
		case nil:
			s.logger.Info().Msg("Query server stopped normally")
		case http.ErrServerClosed:
			s.logger.Info().Msg("Query server closed gracefully")
		default:
			s.logger.Error().Err(err).Msg("Query server error")
		}
	}()

	// Wait for startup result with timeout
	select {
	case err := <-startupChan:
		if err != nil {
			return err
		}
		s.logger.Info().Str("addr", s.server.Addr).Msg("Query server started")
		return nil
	case <-time.After(5 * time.Second):
		return fmt.Errorf("server startup timeout")
	}
}

// Stop gracefully shuts down the HTTP server
func (s *Server) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}
