// Package http exposes the dashboard REST API.
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aiwatch-dev/aiwatch/pkg/usecase"
)

// UseCases bundles the use cases served by the API
type UseCases struct {
	Statistics    *usecase.Statistics
	Articles      *usecase.Articles
	Reports       *usecase.Reports
	Subscriptions *usecase.Subscriptions
	APIKeys       *usecase.APIKeys
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
	uc     *UseCases
}

// NewServer creates a new HTTP server serving the dashboard API
func NewServer(ctx context.Context, addr string, uc *UseCases, allowedOrigins []string) *Server {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(MetricsMiddleware())
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	h := &handlers{uc: uc}

	// Health check and metrics
	router.Get("/health", handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	router.Post("/articles/statistics", h.handleStatistics)
	router.Get("/news/{articleID}", h.handleArticleDetail)
	router.Post("/sources/manual", h.handleSubmitReport)

	router.Route("/admin", func(r chi.Router) {
		r.Get("/reports", h.handleListReports)
		r.Get("/stats", h.handleReportStats)
		r.Route("/reports/{reportID}", func(r chi.Router) {
			r.Patch("/status", h.handleUpdateReportStatus)
			r.Put("/", h.handleUpdateReport)
			r.Delete("/", h.handleDeleteReport)
		})
	})

	router.Route("/subscriptions/csv", func(r chi.Router) {
		r.Post("/", h.handleCreateSubscription)
		r.Get("/", h.handleListSubscriptions)
		r.Get("/stats", h.handleSubscriptionStats)
		r.Route("/{subscriptionID}", func(r chi.Router) {
			r.Patch("/", h.handleUpdateSubscriptionStatus)
			r.Delete("/", h.handleDeleteSubscription)
			r.Post("/export", h.handleTriggerExport)
			r.Get("/exports", h.handleExportHistory)
		})
	})

	router.Route("/api/keys", func(r chi.Router) {
		r.Post("/", h.handleCreateAPIKey)
		r.Get("/", h.handleListAPIKeys)
		r.Delete("/{keyID}", h.handleDeleteAPIKey)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
		uc:     uc,
	}
}

// Router exposes the underlying router, mainly for tests
func (s *Server) Router() chi.Router {
	return s.router
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "aiwatch",
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		ctxlog.From(context.Background()).Error("Failed to encode error response", "error", err)
	}
}

type handlers struct {
	uc *UseCases
}
