package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jdevries/Banking-Insights-Backend/internal/api"
	"github.com/jdevries/Banking-Insights-Backend/internal/bankapi"
	"github.com/jdevries/Banking-Insights-Backend/internal/categorize"
	"github.com/jdevries/Banking-Insights-Backend/internal/config"
	"github.com/jdevries/Banking-Insights-Backend/internal/normalize"
	"github.com/jdevries/Banking-Insights-Backend/internal/scheduler"
	"github.com/jdevries/Banking-Insights-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Compile the categorization rule set. A malformed rule is a
	// configuration defect and aborts startup.
	engine, err := categorize.NewEngine(categorize.DefaultRules())
	if err != nil {
		log.Fatalf("Failed to compile category rules: %v", err)
	}

	// Build bank API clients for every configured provider
	clients, err := bankapi.NewRegistry(cfg.Providers)
	if err != nil {
		log.Fatalf("Failed to create provider clients: %v", err)
	}

	// Create services
	analysisService := service.NewAnalysisService(normalize.New(), engine)
	syncService := service.NewSyncService(clients, analysisService)
	reportService := service.NewReportService(cfg.Reports.OutputDir)

	log.Printf("Configured providers: %v", syncService.Providers())

	// Start the background sync when a cron spec is configured
	if cfg.Scheduler.CronSpec != "" {
		sched, err := scheduler.New(cfg.Scheduler.CronSpec, syncService)
		if err != nil {
			log.Fatalf("Failed to create scheduler: %v", err)
		}
		sched.Start()
		defer sched.Stop()
		log.Printf("Scheduled sync enabled: %s", cfg.Scheduler.CronSpec)
	}

	// Create router
	router := api.NewRouter(analysisService, syncService, reportService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
