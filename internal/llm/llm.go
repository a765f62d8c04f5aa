package llm

import "fmt"

// creates a new chat generator with auto-configuration from environment variables
func NewChatGenerator() (ChatGenerator, error) {
	config, err := loadConfig()

	if err != nil {
		return nil, fmt.Errorf("failed to load LLM config: %w", err)
	}

	return NewChatGeneratorWithConfig(config)
}

// creates a new chat generator with explicit configuration
func NewChatGeneratorWithConfig(config *Config) (ChatGenerator, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	switch config.Provider {
	case ProviderAnthropic:
		return NewAnthropicClient(AnthropicConfig{
			APIKey:      config.APIKey,
			Model:       config.Model,
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", config.Provider)
	}
}
