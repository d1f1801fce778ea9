// Package server exposes the indicators over an HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/huangsam/foodsec/internal/contract"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server timeouts.
const (
	RequestTimeout  = 30 * time.Second
	ShutdownTimeout = 10 * time.Second
	MaxBodyBytes    = 32 << 20
)

// Server is the foodsec HTTP API.
type Server struct {
	cfg      *contract.Config
	version  string
	registry *prometheus.Registry
	metrics  *Metrics
	router   chi.Router
}

// New creates a server with its own metrics registry and routes.
func New(cfg *contract.Config, version string) *Server {
	registry := prometheus.NewRegistry()
	s := &Server{
		cfg:      cfg,
		version:  version,
		registry: registry,
		metrics:  NewMetrics(registry),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, s.loggingMiddleware, middleware.Recoverer)
	r.Use(middleware.Timeout(RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.healthCheck)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Route("/v1/indicators", func(ir chi.Router) {
		ir.Get("/", s.listIndicators)
		ir.Route("/{key}", func(kr chi.Router) {
			kr.Post("/validate", s.validateDataset)
			kr.Post("/calculate", s.calculateIndicator)
			kr.Post("/classify", s.classifyScores)
		})
	})
	return r
}

// Handler returns the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on cfg.Addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		contract.Logger().Info().Str("addr", s.cfg.Addr).Str("version", s.version).Msg("Starting foodsec server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	contract.LogInfo("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
