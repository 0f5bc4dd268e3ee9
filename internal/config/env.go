package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"whisper-transcription/internal/api/server"
)

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; system environment variables still apply.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// GetServerConfig builds the HTTP server configuration from environment
// variables, falling back to defaults suitable for container deployment.
func GetServerConfig() server.Config {
	return server.Config{
		Host:         getEnvOrDefault("WHISPER_HOST", "0.0.0.0"),
		Port:         getEnvOrDefault("WHISPER_PORT", "9000"),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  120 * time.Second,
		Environment:  getEnvOrDefault("WHISPER_ENV", "development"),
	}
}

// GetTempDir returns the directory used to spool uploaded audio. An empty
// value means the OS default temp directory.
func GetTempDir() string {
	return strings.TrimSpace(os.Getenv("WHISPER_TEMP_DIR"))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
