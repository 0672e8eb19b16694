// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the search pipeline over HTTP. The API has one
// operation, POST /api/search; the transport status is always 200 and
// callers inspect the success field of the envelope.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/pdiddy/course-search/pkg/types"
)

const shutdownTimeout = 5 * time.Second

// Searcher runs one search pipeline instance per request.
type Searcher interface {
	Search(ctx context.Context, query string) ([]types.CourseRecord, error)
}

// Server wires the gin router around the search pipeline.
type Server struct {
	cfg      types.ServerConfig
	searcher Searcher
	log      *log.Logger
	http     *http.Server
}

// New builds the router and the underlying HTTP server.
func New(cfg types.ServerConfig, searcher Searcher, logger *log.Logger) *Server {
	s := &Server{cfg: cfg, searcher: searcher, log: logger}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	r.Use(CORS(cfg.AllowedOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/api/search", s.handleSearch)

	port := cfg.Port
	if port == 0 {
		port = 5000
	}
	s.http = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}
	return s
}

// Handler returns the router, for tests that drive it directly.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Run starts the listener and blocks until ctx is cancelled, then shuts
// down gracefully so in-flight searches finish.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()
	s.log.Info("server listening", "addr", s.http.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("shutting down")
		return s.http.Shutdown(shutdownCtx)
	}
}
