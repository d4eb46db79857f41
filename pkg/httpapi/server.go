// Package httpapi exposes roster lookups and dry-run lineup searches over HTTP.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jakechorley/cb-team-builder/internal/config"
	"github.com/jakechorley/cb-team-builder/pkg/core/services"
)

// searchTimeout bounds a single request, a cancelled context stops the search
const searchTimeout = 60 * time.Second

var validate = validator.New()

// API serves requests against a fixed roster source and configuration
type API struct {
	source services.PlayerSource
	cfg    *config.Config
	logger *zap.Logger
}

// NewRouter constructs the router with its middleware stack
func NewRouter(source services.PlayerSource, cfg *config.Config, logger *zap.Logger) http.Handler {
	api := &API{
		source: source,
		cfg:    cfg,
		logger: logger,
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(requestLogger(logger))
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(searchTimeout))

	router.Get("/healthz", api.health)

	router.Route("/v1", func(r chi.Router) {
		r.Get("/players", api.listPlayers)
		r.Post("/lineups", api.generateLineups)
		r.Post("/scarcity", api.reportScarcity)
	})

	return router
}

// NewServer wraps the router in an http.Server listening on addr
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      searchTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// requestLogger logs one line per request with the zap logger
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", chimw.GetReqID(r.Context())))
		})
	}
}
