// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	DatabasePath string
	GroqAPIKey   string
	// Base URL of the OpenAI-compatible completion endpoint.
	LLMBaseURL     string
	LLMModel       string
	AllowedOrigins []string
	AudioDir       string
	Environment    string
}

// Load reads configuration from environment variables or .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8000"),
		DatabasePath:   getEnv("DATABASE_PATH", "/tmp/conversations.db"),
		GroqAPIKey:     getEnv("GROQ_API_KEY", ""),
		LLMBaseURL:     getEnv("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
		LLMModel:       getEnv("LLM_MODEL", "llama-3.1-8b-instant"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		AudioDir:       getEnv("AUDIO_DIR", "audio_storage"),
		Environment:    env,
	}

	// Validation for production environments
	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.GroqAPIKey == "" {
			missing = append(missing, "GROQ_API_KEY")
		}
		if cfg.DatabasePath == "" {
			missing = append(missing, "DATABASE_PATH")
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// splitOrigins parses a comma-separated origin list, trimming whitespace.
func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
