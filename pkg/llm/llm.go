package llm

import (
	"context"

	"github.com/harshinharshi/medical-chatbot/pkg/core"
	"github.com/harshinharshi/medical-chatbot/pkg/types"
)

// Provider defines the interface for language model providers. A call returns
// exactly one assistant message; when it carries tool calls the content may be
// empty and the caller must not treat it as final.
type Provider interface {
	// Chat generates the next assistant message for a conversation, offering
	// the given functions for the model to call. A transport or provider
	// failure wraps core.ErrUpstreamUnavailable; the provider never retries.
	Chat(ctx context.Context, messages []types.Message, functions []core.FunctionDefinition) (types.Message, error)

	// Model returns the model name the provider is configured with
	Model() string
}

// Config holds configuration for an LLM provider
type Config struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	MaxTokens   int
}

// NewConfig creates a new LLM configuration with default values. The original
// assistant runs with temperature 0 so answers stay deterministic.
func NewConfig() *Config {
	return &Config{
		Temperature: 0,
		MaxTokens:   2000,
	}
}
