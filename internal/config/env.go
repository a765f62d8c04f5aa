package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultDailyFreeQuota  = 10
	defaultPaidQueryCost   = 0.001 // MOVE tokens per query
	defaultRateLimitPerMin = 60
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	jwtSecret := os.Getenv("JWT_SECRET")
	environment := os.Getenv("ENVIRONMENT")
	port := os.Getenv("PORT")

	if anthropicKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	if port == "" {
		port = "8080"
	}

	return &Config{
		AnthropicKey:    anthropicKey,
		JWTSecret:       jwtSecret,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		Environment:     environment,
		Port:            port,
		AllowedOrigins:  splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		DailyFreeQuota:  envInt("DAILY_FREE_QUOTA", defaultDailyFreeQuota),
		PaidQueryCost:   envFloat("PAID_QUERY_COST", defaultPaidQueryCost),
		RateLimitPerMin: envInt("RATE_LIMIT_PER_MINUTE", defaultRateLimitPerMin),
	}, nil
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))

	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil {
			return val
		}
	}

	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if raw := os.Getenv(key); raw != "" {
		if val, err := strconv.ParseFloat(raw, 64); err == nil {
			return val
		}
	}

	return fallback
}
