package config

import "os"

// GetEnv returns the value of an environment variable or a default.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
