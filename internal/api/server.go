package api

import (
	"net/http"
	"time"

	comparisonapi "github.com/futig/contract-workbench/internal/api/comparison"
	"github.com/futig/contract-workbench/internal/api/docs"
	"github.com/futig/contract-workbench/internal/api/middleware"
	modelapi "github.com/futig/contract-workbench/internal/api/model"
	queryapi "github.com/futig/contract-workbench/internal/api/query"
	renderapi "github.com/futig/contract-workbench/internal/api/render"
	savedresultapi "github.com/futig/contract-workbench/internal/api/savedresult"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handlers struct {
	Model       *modelapi.Handler
	Query       *queryapi.Handler
	Render      *renderapi.Handler
	SavedResult *savedresultapi.Handler
	Comparison  *comparisonapi.Handler
}

type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(h Handlers, cfg RouterConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	modelapi.RegisterRoutes(r, h.Model)
	queryapi.RegisterRoutes(r, h.Query)
	renderapi.RegisterRoutes(r, h.Render)
	savedresultapi.RegisterRoutes(r, h.SavedResult)
	comparisonapi.RegisterRoutes(r, h.Comparison)

	return r
}
