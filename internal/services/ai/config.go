// File: internal/services/ai/config.go
package ai

import (
    "fmt"
    "time"
)

type Config struct {
    // API Configuration. An empty APIKey is tolerated: completion calls
    // then fail and callers fall back, which keeps local development
    // working without credentials.
    APIKey  string
    BaseURL string
    Model   string

    // Per-call timeout for completion requests.
    Timeout time.Duration
}

func (c *Config) Validate() error {
    if c.Model == "" {
        return fmt.Errorf("model name is required")
    }
    if c.Timeout <= 0 {
        return fmt.Errorf("timeout must be positive")
    }
    return nil
}

func DefaultConfig() *Config {
    return &Config{
        Model:   "llama-3.1-8b-instant",
        Timeout: 60 * time.Second,
    }
}
