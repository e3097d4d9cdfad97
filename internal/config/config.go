package config

import (
	"os"
	"strconv"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Sweep    SweepConfig
	Upload   UploadConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds the optional durable-store connection settings.
// An empty URL keeps artifacts in process memory.
type DatabaseConfig struct {
	URL string
}

// SweepConfig holds artifact eviction settings
type SweepConfig struct {
	MaxAge   time.Duration
	Interval time.Duration
}

// UploadConfig holds multipart upload limits
type UploadConfig struct {
	MaxMemoryMB int64
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "5000"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Sweep: SweepConfig{
			MaxAge:   time.Duration(getEnvIntOrDefault("MAX_ARTIFACT_AGE", 3600)) * time.Second,
			Interval: time.Duration(getEnvIntOrDefault("SWEEP_INTERVAL", 0)) * time.Second,
		},
		Upload: UploadConfig{
			MaxMemoryMB: int64(getEnvIntOrDefault("MAX_UPLOAD_MB", 16)),
		},
	}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
