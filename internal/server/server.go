package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/recipe-finder/internal/config"
	"github.com/jonathan/recipe-finder/internal/metrics"
	"github.com/jonathan/recipe-finder/internal/server/ratelimit"
	"github.com/jonathan/recipe-finder/internal/store"
)

const defaultShutdownTimeout = 30 * time.Second

// Server represents the HTTP server
type Server struct {
	cfg         *config.Config
	store       *store.Store
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
	httpServer  *http.Server
}

// New creates a new server instance. A nil logger discards output.
func New(cfg *config.Config, st *store.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:         cfg,
		store:       st,
		logger:      logger,
		rateLimiter: ratelimit.NewLimiter(ratelimit.FromSettings(cfg.RateLimit)),
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	metrics.SetCatalogSize(st.Len())
	return s
}

// routes builds the chi router with the global middleware stack.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(withRequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.withLogging)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.withCORS())
	if s.cfg.Metrics.Enabled {
		r.Use(withMetrics)
	}
	r.Use(s.withRateLimit)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		s.errorResponse(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		s.errorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", s.handleHealth)
	if s.cfg.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/recipes", s.handleListRecipes)
		r.Post("/recipes", s.handleCreateRecipe)
		r.Post("/recipes/filter", s.handleFilterRecipes)
		r.Get("/recipes/search/{query}", s.handleSearchRecipes)
		r.Get("/recipes/category/{category}", s.handleRecipesByCategory)
		r.Get("/recipes/tags/{tags}", s.handleRecipesByTags)
		r.Get("/recipes/{id}", s.handleGetRecipe)

		r.Post("/survey", s.handleSubmitSurvey)
		r.Get("/facets", s.handleFacets)
	})

	return r
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe listens on the configured address and serves until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting", zap.String("addr", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down server")

		timeout := s.cfg.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := s.httpServer.Shutdown(shutdownCtx)
		s.rateLimiter.Stop()
		if err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		s.logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"recipes": s.store.Len(),
	})
}
