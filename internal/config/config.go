package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Chat    ChatConfig
	Logging LoggingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// CatalogConfig holds listing search configuration
type CatalogConfig struct {
	DefaultPageSize int
	MaxPageSize     int
	SimilarDefault  int
	SimilarMax      int
}

// ChatConfig holds chatbot configuration
type ChatConfig struct {
	MatchConfidence    float64 // confidence reported for a matched intent
	FallbackConfidence float64 // confidence reported for the default intent
	ErrorConfidence    float64 // confidence reported on internal failure
	RandomSeed         int64   // 0 means time-seeded
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8000),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		},
		Catalog: CatalogConfig{
			DefaultPageSize: getEnvAsInt("CATALOG_DEFAULT_PAGE_SIZE", 10),
			MaxPageSize:     getEnvAsInt("CATALOG_MAX_PAGE_SIZE", 100),
			SimilarDefault:  getEnvAsInt("CATALOG_SIMILAR_DEFAULT_LIMIT", 4),
			SimilarMax:      getEnvAsInt("CATALOG_SIMILAR_MAX_LIMIT", 10),
		},
		Chat: ChatConfig{
			MatchConfidence:    getEnvAsFloat("CHAT_MATCH_CONFIDENCE", 0.9),
			FallbackConfidence: getEnvAsFloat("CHAT_FALLBACK_CONFIDENCE", 0.3),
			ErrorConfidence:    getEnvAsFloat("CHAT_ERROR_CONFIDENCE", 0.1),
			RandomSeed:         int64(getEnvAsInt("CHAT_RANDOM_SEED", 0)),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
