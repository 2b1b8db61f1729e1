package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is only meant for local development.
const DefaultJWTSecret = "your-secret-key-change-in-production"

type Config struct {
	AppEnv    string
	LogLevel  string
	LogFormat string // "json" or "text"

	AuthAddr    string // Listen address of the identity service
	CatalogAddr string // Listen address of the catalog/cart service

	JWTSecret string // Shared HS256 secret, must match across both services

	AuthServiceURL  string        // Base URL the catalog service uses to confirm identities
	IdentityTimeout time.Duration // Upper bound for a single profile lookup
	StrictIdentity  bool          // Surface an unreachable identity service instead of degrading to anonymous

	DatabaseURL string // Postgres DSN for users; empty keeps users in memory
	RedisURL    string // Redis URL for carts; empty keeps carts in memory

	RateLimitRPS       float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst     int     // Burst size for rate limiting
	RateLimitAuthRPS   float64 // Rate limit for register/login (stricter)
	RateLimitAuthBurst int     // Burst size for register/login
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		AuthAddr:           getEnv("AUTH_ADDR", ":8001"),
		CatalogAddr:        getEnv("CATALOG_ADDR", ":8000"),
		JWTSecret:          getEnv("JWT_SECRET_KEY", DefaultJWTSecret),
		AuthServiceURL:     getEnv("AUTH_SERVICE_URL", "http://localhost:8001"),
		IdentityTimeout:    getEnvDuration("IDENTITY_TIMEOUT", 3*time.Second),
		StrictIdentity:     getEnvBool("STRICT_IDENTITY", false),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 10),      // 10 requests per second for general API
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),      // Allow bursts of 20
		RateLimitAuthRPS:   getEnvFloat("RATE_LIMIT_AUTH_RPS", 5),  // 5 requests per second for auth (stricter)
		RateLimitAuthBurst: getEnvInt("RATE_LIMIT_AUTH_BURST", 10), // Allow bursts of 10
	}
}

// UsesDefaultSecret reports whether the development JWT secret is in effect.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
