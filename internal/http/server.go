package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Server owns the listener lifecycle for the bookmarks API.
// Start blocks until the listener stops; Shutdown drains in-flight
// requests within the caller's context deadline.
type Server struct {
	httpServer *http.Server
}

// NewServer wraps the router in an http.Server with the configured timeouts
func NewServer(addr string, handler http.Handler, readTimeout, writeTimeout time.Duration) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
	}
}

// Start listens and serves. A clean shutdown is not an error.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}

	return nil
}

// Shutdown stops accepting connections and waits for active requests,
// up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Draining connections...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Println("Server stopped")
	return nil
}
