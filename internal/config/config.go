package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for a service
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Pricing       PricingConfig
	StocksService StocksServiceConfig
	Log           LogConfig
	CORS          CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// PricingConfig holds configuration for the external stock price API
type PricingConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// StocksServiceConfig holds the location of the stocks record service,
// used by the capital-gains service.
type StocksServiceConfig struct {
	BaseURL string
	Timeout time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file.
// defaultPort differs per binary (stocks: 8000, capital-gains: 8080).
func Load(defaultPort string) (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	timeout, err := strconv.Atoi(getEnv("HTTP_TIMEOUT_SECONDS", "10"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS: %s", getEnv("HTTP_TIMEOUT_SECONDS", "10"))
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", defaultPort),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/stocks.db"),
		},
		Pricing: PricingConfig{
			BaseURL: getEnv("NINJAS_API_URL", "https://api.api-ninjas.com/v1/stockprice"),
			APIKey:  getEnv("NINJAS_API_KEY", ""),
			Timeout: time.Duration(timeout) * time.Second,
		},
		StocksService: StocksServiceConfig{
			BaseURL: getEnv("STOCKS_SERVICE_URL", "http://stocks-service:8000"),
			Timeout: time.Duration(timeout) * time.Second,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnv("LOG_PRETTY", "false") == "true",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
