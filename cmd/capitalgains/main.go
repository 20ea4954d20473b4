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
	"github.com/yshpitzer/portfolio-services/internal/logger"
	"github.com/yshpitzer/portfolio-services/internal/pricing"
	"github.com/yshpitzer/portfolio-services/internal/service"
	"github.com/yshpitzer/portfolio-services/internal/stocksapi"
)

func main() {
	// Load configuration
	cfg, err := config.Load("8080")
	if err != nil {
		fallback := logger.New(logger.Config{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	// Wire dependencies
	stocksClient := stocksapi.NewClient(cfg.StocksService.BaseURL, cfg.StocksService.Timeout)
	oracle := pricing.NewClient(cfg.Pricing.BaseURL, cfg.Pricing.APIKey, cfg.Pricing.Timeout)
	gainsService := service.NewGainsService(stocksClient, oracle, log)
	gainsHandler := handlers.NewGainsHandler(gainsService, log)

	router := api.NewGainsRouter(gainsHandler, log)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("starting capital-gains service")
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
