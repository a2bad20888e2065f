package utils

import "os"

// GetEnvVariable lee una variable de entorno con default.
func GetEnvVariable(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
