package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"blogapi/app/config"
	"blogapi/app/repositories"
	"blogapi/app/routes"
	"blogapi/app/services"
)

// ErrNotStarted is returned by Stop when Start has not succeeded.
var ErrNotStarted = errors.New("server not started")

// Server runs the blog HTTP API on top of a store it does not own.
type Server struct {
	cfg        *config.ServerEnvironment
	logger     *slog.Logger
	httpServer *http.Server

	mu       sync.Mutex
	listener net.Listener
	done     chan error
}

// New builds the router for store and returns an unstarted server.
func New(cfg *config.ServerEnvironment, store repositories.PostRepository, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	router := routes.SetupRoutes(services.NewPostService(store), logger)

	return &Server{
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Start binds the listener and serves in the background. It returns once the
// listener is accepting connections.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return errors.New("server already started")
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	s.listener = ln
	s.done = make(chan error, 1)

	go func(done chan<- error) {
		err := s.httpServer.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
		close(done)
	}(s.done)

	s.logger.Info("server started", "addr", ln.Addr().String())
	return nil
}

// Addr returns the bound listener address, or the configured address before
// Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return s.httpServer.Addr
	}
	return s.listener.Addr().String()
}

// BaseURL returns the http URL of the running server.
func (s *Server) BaseURL() string {
	return "http://" + s.Addr()
}

// Stop gracefully shuts the server down, waiting at most the configured
// shutdown timeout for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	started := s.listener != nil
	s.mu.Unlock()

	if !started {
		return ErrNotStarted
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-done; err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// Run starts the server and blocks until ctx is cancelled or the server
// fails, then shuts it down.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	select {
	case <-ctx.Done():
	case err, ok := <-done:
		if ok && err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	return s.Stop(context.Background())
}
