// Package server runs the local todo API over HTTP.
package server

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/todoapi/todoapi/internal/api"
	"github.com/todoapi/todoapi/internal/store/sqlite"
)

const (
	// DefaultAddress is the default address the server listens on.
	DefaultAddress = "localhost:7433"
	// DefaultShutdownTimeout is the default timeout for graceful shutdown.
	DefaultShutdownTimeout = 30 * time.Second
)

// Server manages the HTTP server lifecycle.
type Server struct {
	httpServer *http.Server
	store      *sqlite.Store
	logger     zerolog.Logger
	listener   net.Listener
	ready      chan struct{}
	mu         sync.Mutex
	started    bool
}

// New creates a new Server backed by store. If addr is empty, DefaultAddress
// is used. The server logs through opts.Logger and closes store on Shutdown.
func New(addr string, store *sqlite.Store, opts api.RouterOptions) *Server {
	if addr == "" {
		addr = DefaultAddress
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      api.NewRouter(store, opts),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		store:  store,
		logger: opts.Logger,
		ready:  make(chan struct{}),
	}
}

// Start starts the HTTP server and blocks until the server is shut down.
// It returns http.ErrServerClosed when the server is gracefully shut down.
func (s *Server) Start() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}

	// Create listener first so we know the actual address (for port 0 case)
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.listener = ln
	s.started = true
	close(s.ready)
	s.mu.Unlock()

	s.logger.Info().Str("addr", ln.Addr().String()).Msg("server listening")

	return s.httpServer.Serve(ln)
}

// Ready is closed once the server is accepting connections.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown gracefully shuts down the server without interrupting active connections.
// It waits for active connections to finish or until the context is canceled.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	s.logger.Info().Msg("shutting down server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	if err := s.store.Close(); err != nil {
		s.logger.Warn().Err(err).Msg("error closing store")
	}

	s.logger.Info().Msg("server stopped")
	return nil
}

// Addr returns the address the server is listening on.
// Returns empty string if the server hasn't started yet.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}

// ListenAndServe starts the server and shuts it down gracefully on SIGINT
// or SIGTERM.
func (s *Server) ListenAndServe() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		s.logger.Info().Str("signal", sig.String()).Msg("received signal")
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()

	return s.Shutdown(ctx)
}
