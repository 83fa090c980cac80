package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jdevries/Banking-Insights-Backend/internal/api/handlers"
	custommiddleware "github.com/jdevries/Banking-Insights-Backend/internal/api/middleware"
	"github.com/jdevries/Banking-Insights-Backend/internal/config"
	"github.com/jdevries/Banking-Insights-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(analysisService *service.AnalysisService, syncService *service.SyncService, reportService *service.ReportService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(syncService)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/analysis", func(r chi.Router) {
			analysisHandler := handlers.NewAnalysisHandler(analysisService, syncService)
			r.Post("/", analysisHandler.AnalyzeBatch)
			r.Get("/", analysisHandler.AnalyzeRange)
		})

		r.Route("/transactions", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(syncService)
			r.With(custommiddleware.ValidateProviderMiddleware(syncService.Supports)).
				Get("/", transactionHandler.FetchTransactions)
		})

		r.Route("/reports", func(r chi.Router) {
			reportHandler := handlers.NewReportHandler(syncService, reportService)
			r.Post("/", reportHandler.ExportReport)
		})
	})

	return r
}
