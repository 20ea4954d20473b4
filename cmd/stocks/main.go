package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yshpitzer/portfolio-services/internal/api"
	"github.com/yshpitzer/portfolio-services/internal/api/handlers"
	"github.com/yshpitzer/portfolio-services/internal/config"
	"github.com/yshpitzer/portfolio-services/internal/database"
	"github.com/yshpitzer/portfolio-services/internal/logger"
	"github.com/yshpitzer/portfolio-services/internal/pricing"
	"github.com/yshpitzer/portfolio-services/internal/repository"
	"github.com/yshpitzer/portfolio-services/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("8000")
	if err != nil {
		fallback := logger.New(logger.Config{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	log.Info().Str("path", cfg.Database.Path).Msg("connected to database")

	// Wire dependencies
	stockRepo := repository.NewStockRepository(db)
	oracle := pricing.NewClient(cfg.Pricing.BaseURL, cfg.Pricing.APIKey, cfg.Pricing.Timeout)
	stockService := service.NewStockService(stockRepo, oracle, log)
	stockHandler := handlers.NewStockHandler(stockService, log)
	systemHandler := handlers.NewSystemHandler(db, log)

	router := api.NewStocksRouter(stockHandler, systemHandler, log, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("starting stocks service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
