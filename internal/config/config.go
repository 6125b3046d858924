package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Perplexity PerplexityConfig
	Search     SearchConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// PerplexityConfig holds Perplexity API configuration
type PerplexityConfig struct {
	APIBase      string
	DefaultKey   string // optional operator key; per-request user keys override it
	DefaultModel string
	Temperature  float64
	MaxTokens    int
	Timeout      int // seconds
}

// SearchConfig holds limits applied at the API boundary
type SearchConfig struct {
	DefaultMaxImages int
	MaxImagesCap     int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization,X-Session-ID"),
		},
		Perplexity: PerplexityConfig{
			APIBase:      getEnv("PERPLEXITY_API_BASE", "https://api.perplexity.ai"),
			DefaultKey:   getEnv("PERPLEXITY_API_KEY", ""),
			DefaultModel: getEnv("PERPLEXITY_MODEL", "sonar"),
			Temperature:  getEnvAsFloat("PERPLEXITY_TEMPERATURE", 0.2),
			MaxTokens:    getEnvAsInt("PERPLEXITY_MAX_TOKENS", 1024),
			Timeout:      getEnvAsInt("PERPLEXITY_TIMEOUT", 45),
		},
		Search: SearchConfig{
			DefaultMaxImages: getEnvAsInt("SEARCH_DEFAULT_MAX_IMAGES", 10),
			MaxImagesCap:     getEnvAsInt("SEARCH_MAX_IMAGES_CAP", 50),
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
