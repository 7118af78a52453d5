package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort          string
	DatabaseType        string
	DatabasePath        string
	DatabaseURL         string
	SimulateConnections bool
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	// A missing .env file just means plain environment variables
	_ = godotenv.Load()

	return &Config{
		ServerPort:          getEnv("PORT", "8080"),
		DatabaseType:        getEnv("DATABASE_TYPE", "sqlite"),
		DatabasePath:        getEnv("DB_PATH", "./memoir.db"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		SimulateConnections: getEnv("SIMULATE_CONNECTIONS", "true") == "true",
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
