// File: internal/config/config_test.go
package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "SERVER_PORT", "DATABASE_PATH", "GROQ_API_KEY", "LLM_BASE_URL", "LLM_MODEL", "ALLOWED_ORIGINS", "AUDIO_DIR"} {
		// Setenv registers restoration; unset to exercise the fallback path.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, "/tmp/conversations.db", cfg.DatabasePath)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.LLMBaseURL)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.LLMModel)
	assert.Equal(t, "audio_storage", cfg.AudioDir)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DATABASE_PATH", "/var/data/medbridge.db")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://clinic.example.com")

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "/var/data/medbridge.db", cfg.DatabasePath)
	assert.Equal(t, "gsk_test", cfg.GroqAPIKey)
	assert.Equal(t, []string{"http://localhost:3000", "https://clinic.example.com"}, cfg.AllowedOrigins)
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, splitOrigins("*"))
	assert.Equal(t, []string{"a", "b"}, splitOrigins("a, b"))
	assert.Equal(t, []string{"*"}, splitOrigins(" ,  , "))
}
