package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported upstream providers
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// Placeholder values shipped in the example .env file. A key equal to one of
// these is treated the same as a missing key.
const (
	GeminiKeyPlaceholder    = "your_google_gemini_api_key_here"
	AnthropicKeyPlaceholder = "your_anthropic_api_key_here"
)

// Config holds all configuration for the application
type Config struct {
	// Upstream model configuration
	Provider        string
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	ClaudeModel     string

	// Server configuration
	ServerPort string
	LogLevel   string

	// CORS configuration
	CORSOrigins []string

	// Base URL the analysis client talks to, including the /api prefix
	APIBaseURL string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Provider:        strings.ToLower(getEnvWithDefault("UPSTREAM_PROVIDER", ProviderGemini)),
		GeminiAPIKey:    strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:     getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		AnthropicAPIKey: strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
		ClaudeModel:     getEnvWithDefault("CLAUDE_MODEL", "claude-sonnet-4-20250514"),
		ServerPort:      getEnvWithDefault("PORT", "3001"),
		LogLevel:        strings.ToUpper(getEnvWithDefault("LOG_LEVEL", "INFO")),
		APIBaseURL:      strings.TrimRight(getEnvWithDefault("DETECTOR_API_URL", "http://localhost:3001/api"), "/"),
	}

	// Parse CORS origins
	corsOriginsStr := getEnvWithDefault("CORS_ORIGINS", "*")
	cfg.CORSOrigins = strings.Split(corsOriginsStr, ",")
	for i := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(cfg.CORSOrigins[i])
	}

	switch cfg.Provider {
	case ProviderGemini, ProviderAnthropic:
	default:
		return nil, fmt.Errorf("UPSTREAM_PROVIDER must be %q or %q, got %q", ProviderGemini, ProviderAnthropic, cfg.Provider)
	}

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.ServerPort)
	}

	return cfg, nil
}

// APIKey returns the credential of the selected provider
func (c *Config) APIKey() string {
	if c.Provider == ProviderAnthropic {
		return c.AnthropicAPIKey
	}
	return c.GeminiAPIKey
}

// Model returns the model name of the selected provider
func (c *Config) Model() string {
	if c.Provider == ProviderAnthropic {
		return c.ClaudeModel
	}
	return c.GeminiModel
}

// UpstreamConfigured reports whether the selected provider has a usable credential
func (c *Config) UpstreamConfigured() bool {
	key := c.APIKey()
	if key == "" {
		return false
	}
	return key != GeminiKeyPlaceholder && key != AnthropicKeyPlaceholder
}

// KeyEnvName is the environment variable an operator has to set for the selected provider
func (c *Config) KeyEnvName() string {
	if c.Provider == ProviderAnthropic {
		return "ANTHROPIC_API_KEY"
	}
	return "GEMINI_API_KEY"
}

// ProviderName is the display name of the selected provider
func (c *Config) ProviderName() string {
	if c.Provider == ProviderAnthropic {
		return "Anthropic"
	}
	return "Gemini"
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
