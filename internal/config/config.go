package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Vapi     VapiConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// VapiConfig holds credentials and identifiers for the VAPI voice provider.
// These are intentionally not required at startup: /start-call reports their
// absence as a structured error payload instead of refusing to boot.
type VapiConfig struct {
	APIKey        string
	AssistantID   string
	PhoneNumberID string
	BaseURL       string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

const defaultVapiBaseURL = "https://api.vapi.ai"

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.URL, err = requireEnv("DATABASE_URL"); err != nil {
		return nil, err
	}

	// VAPI configuration, validated per request in the calls processor
	cfg.Vapi.APIKey = os.Getenv("VAPI_API_KEY")
	cfg.Vapi.AssistantID = os.Getenv("VAPI_AGENT_ID")
	cfg.Vapi.PhoneNumberID = os.Getenv("VAPI_PHONE_NUMBER_ID")
	cfg.Vapi.BaseURL = getEnvWithDefault("VAPI_BASE_URL", defaultVapiBaseURL)

	// Server configuration
	serverPort := getEnvWithDefault("SERVER_PORT", "8000")
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
