// ABOUTME: Huma API server configuration and setup
// ABOUTME: Builds the chi router with CORS, request logging, rate limiting and /metrics

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"newsreader-core/api/handlers"
	"newsreader-core/api/middleware"
	"newsreader-core/core/interfaces"
)

const (
	title   = "Newsreader API"
	Version = "1.0.0"
)

// Config holds configuration for the API
type Config struct {
	Logger         interfaces.Logger
	RateLimit      float64 // requests per second per client, 0 disables
	RateBurst      int
	AllowedOrigins []string
	// Metrics, when set, is mounted at /metrics outside the OpenAPI surface
	Metrics http.Handler
}

// Routes is implemented by every handler group
type Routes interface {
	RegisterRoutes(api huma.API)
}

// NewAPI creates the Huma API on a chi router with middleware configured
func NewAPI(cfg Config) (huma.API, chi.Router) {
	router := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLogging(cfg.Logger))
	}
	if cfg.RateLimit > 0 {
		router.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)))
	}

	if cfg.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	config := huma.DefaultConfig(title, Version)
	config.Info.Description = "Deep-link resolution, search and listings over the news content API"

	// OpenAPI at /openapi.json, docs at /docs
	api := humachi.New(router, config)

	return api, router
}

// Register attaches handler groups and the health check
func Register(api huma.API, groups ...Routes) {
	for _, g := range groups {
		g.RegisterRoutes(api)
	}
	handlers.RegisterHealth(api, Version)
}
