package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string
	TablePrefix string
	// Auth - JWKS URL constructed from SupabaseURL + /auth/v1/.well-known/jwks.json.
	// Empty disables bearer token verification.
	SupabaseURL     string
	SupabaseJWKSURL string
	// Cache
	RedisAddr     string // Empty = in-process cache
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	CachePrefix   string
	// Recitations
	RecitationCollectionSlug string
	DefaultLanguage          string
	ImageBaseURL             string
	// Logging
	LogDir      string // Empty = stdout only
	LogMaxFiles int
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	supabaseURL := getEnv("SUPABASE_URL", "")

	jwksURL := ""
	if supabaseURL != "" {
		jwksURL = supabaseURL + "/auth/v1/.well-known/jwks.json"
	}

	return &Config{
		Port:                     getEnv("PORT", "8000"),
		Environment:              env,
		DatabaseURL:              getEnv("DATABASE_URL", ""),
		CORSOrigins:              getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:              getTablePrefix(env),
		SupabaseURL:              supabaseURL,
		SupabaseJWKSURL:          jwksURL,
		RedisAddr:                getEnv("REDIS_ADDR", ""),
		RedisPassword:            getEnv("REDIS_PASSWORD", ""),
		RedisDB:                  getEnvInt("REDIS_DB", 0),
		CacheTTL:                 getEnvDuration("CACHE_TTL", 30*time.Minute),
		CachePrefix:              getEnv("CACHE_PREFIX", env+":"),
		RecitationCollectionSlug: getEnv("RECITATION_COLLECTION_SLUG", "Liturgy"),
		DefaultLanguage:          getEnv("DEFAULT_LANGUAGE", "bo"),
		ImageBaseURL:             getEnv("IMAGE_BASE_URL", ""),
		LogDir:                   getEnv("LOG_DIR", ""),
		LogMaxFiles:              getEnvInt("LOG_MAX_FILES", 10),
	}
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix, ok := os.LookupEnv("TABLE_PREFIX"); ok {
		return prefix
	}

	switch env {
	case "prod":
		return ""
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

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvDuration accepts Go durations ("15m") or plain seconds ("900")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
