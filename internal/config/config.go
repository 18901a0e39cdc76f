package config

import (
	"os"
	"strings"
)

// DefaultModels is the ordered fallback chain used when GEMINI_MODELS is unset.
// First configured, first tried.
var DefaultModels = []string{
	"gemini-2.5-flash",
	"gemini-2.5-flash-lite",
	"gemini-2.0-flash",
}

// Config holds all configuration for the API service
type Config struct {
	// Server
	Port        string
	Environment string

	// CORS
	AllowedOrigin string

	// Generative language API
	GeminiAPIKey  string
	GeminiBaseURL string
	Models        []string

	// Optional response cache
	RedisURL string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("GO_ENV", "development"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		Models:        parseModels(os.Getenv("GEMINI_MODELS")),
		RedisURL:      os.Getenv("REDIS_URL"),
	}
}

// parseModels splits a comma-separated model list, preserving order and
// dropping empty entries. An empty value falls back to DefaultModels.
func parseModels(v string) []string {
	if v == "" {
		return append([]string(nil), DefaultModels...)
	}
	var models []string
	for _, m := range strings.Split(v, ",") {
		if m = strings.TrimSpace(m); m != "" {
			models = append(models, m)
		}
	}
	if len(models) == 0 {
		return append([]string(nil), DefaultModels...)
	}
	return models
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
