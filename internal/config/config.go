package config

import (
	"os"
)

type Config struct {
	Environment string
	DatabaseURL string
	TablePrefix string
	// Blob storage
	StorageBackend string // "disk" or "b2"
	UploadDir      string
	B2KeyID        string
	B2AppKey       string
	B2Bucket       string
	// Auth provider
	JWKSURL string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Environment:    env,
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		TablePrefix:    getTablePrefix(env),
		StorageBackend: getEnv("STORAGE_BACKEND", "disk"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		B2KeyID:        getEnv("B2_KEY_ID", ""),
		B2AppKey:       getEnv("B2_APP_KEY", ""),
		B2Bucket:       getEnv("B2_BUCKET", ""),
		JWKSURL:        getEnv("JWKS_URL", ""),
		// Debug defaults to true outside production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
