package llm

import "context"

// a single role-tagged conversation turn
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// opaque chat request: role-tagged turns in, one assistant reply out
type ChatRequest struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int
}

// reply from the remote model
type ChatResponse struct {
	Text  string
	Model string
	Usage Usage
}

// token accounting reported by the provider
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// generates one assistant reply for a conversation
type ChatGenerator interface {
	GenerateChat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// represents different LLM providers
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
)

// holds configuration for LLM initialization
type Config struct {
	Provider    Provider
	APIKey      string
	Model       string // e.g., "claude-sonnet-4-20250514"
	MaxTokens   int
	Temperature float32
}
