package config

// holds all server configuration loaded from the environment
type Config struct {
	AnthropicKey   string
	JWTSecret      string
	DatabaseURL    string
	RedisURL       string
	Environment    string
	Port           string
	AllowedOrigins []string

	// entitlement settings
	DailyFreeQuota int
	PaidQueryCost  float64

	// rate limiting for the public API (requests per minute per IP)
	RateLimitPerMin int
}
