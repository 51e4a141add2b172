package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL        string  // Postgres connection string (required)
	JWTSecret          string  // Secret key for JWT token signing (required)
	JWTTTL             int     // JWT token expiration time in hours
	RedisURL           string  // Optional cache backend
	Port               string  // HTTP listen port
	RateLimitRPS       float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst     int     // Burst size for rate limiting
	RateLimitAuthRPS   float64 // Rate limit for auth endpoints (stricter)
	RateLimitAuthBurst int     // Burst size for auth endpoints
}

// Load reads configuration from the environment (optionally seeded from a
// .env file). It returns an error when a required key is missing so the
// process can fail fast before opening a listening socket.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	cfg := &Config{
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTTTL:             getEnvInt("JWT_TTL_HOURS", 1),
		RedisURL:           getEnv("REDIS_URL", ""),
		Port:               getEnv("PORT", "3001"),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitAuthRPS:   getEnvFloat("RATE_LIMIT_AUTH_RPS", 5),
		RateLimitAuthBurst: getEnvInt("RATE_LIMIT_AUTH_BURST", 10),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("missing required environment variable DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required environment variable JWT_SECRET")
	}

	return cfg, nil
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
