package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/yshpitzer/portfolio-services/internal/api/handlers"
	custommiddleware "github.com/yshpitzer/portfolio-services/internal/api/middleware"
	"github.com/yshpitzer/portfolio-services/internal/config"
)

// NewStocksRouter creates and configures the HTTP router for the stocks
// record service. The /stocks1 and /stocks2 aliases expose the read
// operations for the nginx layer in front of replicated instances.
func NewStocksRouter(stockHandler *handlers.StockHandler, systemHandler *handlers.SystemHandler, log zerolog.Logger, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.Route("/stocks", func(r chi.Router) {
		r.Post("/", stockHandler.CreateStock)
		r.Get("/", stockHandler.ListStocks)
		r.Get("/{id}", stockHandler.GetStock)
		r.Put("/{id}", stockHandler.UpdateStock)
		r.Delete("/{id}", stockHandler.DeleteStock)
	})

	// Read-only aliases
	for _, alias := range []string{"/stocks1", "/stocks2"} {
		r.Route(alias, func(r chi.Router) {
			r.Get("/", stockHandler.ListStocks)
			r.Get("/{id}", stockHandler.GetStock)
		})
	}

	r.Get("/stock-value/{id}", stockHandler.StockValue)
	r.Get("/portfolio-value", stockHandler.PortfolioValue)

	r.Get("/health", systemHandler.Health)
	r.Get("/kill", systemHandler.Kill)

	return r
}

// NewGainsRouter creates and configures the HTTP router for the
// capital-gains service.
func NewGainsRouter(gainsHandler *handlers.GainsHandler, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	r.Get("/capital-gains", gainsHandler.CapitalGains)

	return r
}
