package llm

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultModel       = "claude-sonnet-4-20250514"
	defaultChatTokens  = 1000
	defaultChatTemp    = float32(0.7)
	defaultProviderEnv = ProviderAnthropic
)

// loadConfig loads LLM configuration from environment variables
func loadConfig() (*Config, error) {
	provider := Provider(os.Getenv("LLM_PROVIDER"))
	if provider == "" {
		provider = defaultProviderEnv
	}

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = defaultModel
	}

	maxTokens := defaultChatTokens
	if raw := os.Getenv("LLM_MAX_TOKENS"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil {
			maxTokens = val
		}
	}

	temperature := defaultChatTemp
	if raw := os.Getenv("LLM_TEMPERATURE"); raw != "" {
		if val, err := strconv.ParseFloat(raw, 32); err == nil {
			temperature = float32(val)
		}
	}

	return &Config{
		Provider:    provider,
		APIKey:      apiKey,
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}, nil
}
