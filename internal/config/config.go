package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
// Only the ambient logging stack is configurable; the monster itself is not.
type Config struct {
	LogLevel    string `validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat   string `validate:"omitempty,oneof=json text"`
	Environment string `validate:"required,oneof=dev development test staging prod production"`
	ServiceName string `validate:"required"`
	Version     string `validate:"required"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, "")),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, "")),
		Environment: strings.ToLower(getEnv(EnvEnvironment, DefaultEnvironment)),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
