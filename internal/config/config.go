package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Correo legacy del administrador. Se usa cuando ADMIN_EMAILS no está configurado,
// igual que hacía la primera versión del panel de administración.
const legacyAdminEmail = "tecnofusion.it@gmail.com"

// Config chứa... contiene toda la configuración de la aplicación,
// populated desde environment variables.
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	JWT     JWTConfig
	MinIO   MinIOConfig
	Auth    AuthConfig
	Catalog CatalogConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string // cuadros-neon
	UseSSL    bool
}

// AuthConfig controla el guard de administración.
// AdminEmails: allow-list separada por comas; si está vacía se usa el correo legacy.
// RequireAuth / RequireAdmin: poner en false desactiva los guards (solo dev/test).
type AuthConfig struct {
	AdminEmails  []string
	RequireAuth  bool
	RequireAdmin bool
}

type CatalogConfig struct {
	// FetchTimeout acota la lectura inicial del catálogo antes de caer al fallback.
	FetchTimeout time.Duration
	// FallbackEnabled habilita el dataset estático cuando el backend está vacío.
	FallbackEnabled bool
	// CacheTTL para el listado público en Redis. 0 desactiva la cache.
	CacheTTL time.Duration
	// SignedURLExpiry para URLs firmadas del blob store (original: 1 año).
	SignedURLExpiry time.Duration
}

// Load đọc config từ environment variables.
func Load() (*Config, error) {
	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Cuadros Neon API"),
			Environment: env,
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnvDev(env, "MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnvDev(env, "MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnvDev(env, "MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnvDev(env, "MINIO_BUCKET", "cuadros-neon"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Auth: AuthConfig{
			AdminEmails:  ParseAdminEmails(os.Getenv("ADMIN_EMAILS")),
			RequireAuth:  getEnvBool("REQUIRE_AUTH", true),
			RequireAdmin: getEnvBool("REQUIRE_ADMIN", true),
		},
		Catalog: CatalogConfig{
			FetchTimeout:    getEnvDuration("CATALOG_FETCH_TIMEOUT", 6*time.Second),
			FallbackEnabled: getEnvBool("CATALOG_FALLBACK_ENABLED", true),
			CacheTTL:        getEnvDuration("CATALOG_CACHE_TTL", 60*time.Second),
			SignedURLExpiry: getEnvDuration("CATALOG_SIGNED_URL_EXPIRY", 365*24*time.Hour),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config. La identidad del backend (document store + blob store)
// es obligatoria: sin esos keys la aplicación no debe arrancar. Fuera de
// development no hay defaults, así que faltar un key corta el arranque.
func (c *Config) Validate() error {
	if c.MinIO.Endpoint == "" {
		return fmt.Errorf("MINIO_ENDPOINT must be set")
	}
	if c.MinIO.Bucket == "" {
		return fmt.Errorf("MINIO_BUCKET must be set")
	}
	if c.MinIO.AccessKey == "" || c.MinIO.SecretKey == "" {
		return fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY must be set")
	}

	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.MinIO.AccessKey == "minioadmin" || c.MinIO.SecretKey == "minioadmin" {
			return fmt.Errorf("MINIO credentials must be set in production")
		}
	}

	return nil
}

// ParseAdminEmails convierte la allow-list separada por comas en un slice
// normalizado (trim + lowercase). Vacío => fallback al correo legacy.
func ParseAdminEmails(raw string) []string {
	var emails []string
	for _, part := range strings.Split(raw, ",") {
		email := strings.ToLower(strings.TrimSpace(part))
		if email != "" {
			emails = append(emails, email)
		}
	}
	if len(emails) == 0 {
		return []string{legacyAdminEmail}
	}
	return emails
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDev aplica el default solo en development. En staging/production
// el key tiene que venir del environment; vacío hace fallar Validate.
func getEnvDev(env, key, devDefault string) string {
	value := os.Getenv(key)
	if value == "" && env == "development" {
		return devDefault
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	// Igual que el guard del frontend original: cualquier cosa distinta
	// de "false" cuenta como true.
	return strings.ToLower(strings.TrimSpace(valueStr)) != "false"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
