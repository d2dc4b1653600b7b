package config

import "os"

// GetEnv reads an environment variable, falling back when it is unset or empty
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
