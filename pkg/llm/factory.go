package llm

import (
	"context"
	"fmt"
	"strings"
)

// NewProvider creates an LLM provider based on the configuration. A "gemini-"
// model prefix selects the Gemini provider; everything else goes through the
// OpenAI-compatible path.
func NewProvider(ctx context.Context, config *Config) (Provider, error) {
	switch {
	case config == nil:
		return nil, fmt.Errorf("config is required")
	case config.Model == "":
		return nil, fmt.Errorf("model name is required")
	case config.APIKey == "":
		return nil, fmt.Errorf("API key is required")
	}

	if strings.HasPrefix(config.Model, "gemini-") {
		return NewGeminiProvider(ctx, config)
	}

	return NewOpenAIProvider(config), nil
}
