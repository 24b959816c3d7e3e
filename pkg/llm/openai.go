package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/harshinharshi/medical-chatbot/pkg/core"
	"github.com/harshinharshi/medical-chatbot/pkg/llm/token"
	"github.com/harshinharshi/medical-chatbot/pkg/types"
)

// OpenAIProvider implements Provider against any OpenAI-compatible chat
// completion API. The default deployment points it at Groq, which serves the
// hospital assistant's model behind the same wire format.
type OpenAIProvider struct {
	client  *openai.Client
	config  *Config
	counter *token.Counter
}

// NewOpenAIProvider creates a new OpenAI-compatible provider instance
func NewOpenAIProvider(config *Config) *OpenAIProvider {
	if config == nil {
		config = NewConfig()
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		client:  openai.NewClientWithConfig(clientConfig),
		config:  config,
		counter: token.NewCounter(config.Model),
	}
}

// Model returns the configured model name
func (p *OpenAIProvider) Model() string {
	return p.config.Model
}

// Chat generates the next assistant message with function calling support
func (p *OpenAIProvider) Chat(ctx context.Context, messages []types.Message, functions []core.FunctionDefinition) (types.Message, error) {
	if !p.counter.Fits(messages) {
		return types.Message{}, fmt.Errorf("%w: conversation exceeds %d token context window",
			core.ErrUpstreamUnavailable, p.counter.ContextSize())
	}

	req := openai.ChatCompletionRequest{
		Model:       p.config.Model,
		Messages:    toOpenAIMessages(messages),
		Temperature: p.config.Temperature,
		MaxTokens:   p.config.MaxTokens,
	}
	if len(functions) > 0 {
		req.Tools = toOpenAITools(functions)
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return types.Message{}, fmt.Errorf("%w: %v", core.ErrUpstreamUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return types.Message{}, fmt.Errorf("%w: no completion choices returned", core.ErrUpstreamUnavailable)
	}

	return fromOpenAIMessage(resp.Choices[0].Message), nil
}

func toOpenAIMessages(messages []types.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		m := openai.ChatCompletionMessage{
			Role:       msg.Role,
			Content:    msg.Content,
			ToolCallID: msg.ToolCallID,
		}
		for _, call := range msg.ToolCalls {
			m.ToolCalls = append(m.ToolCalls, openai.ToolCall{
				ID:   call.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      call.Name,
					Arguments: call.Arguments,
				},
			})
		}
		out[i] = m
	}
	return out
}

func toOpenAITools(functions []core.FunctionDefinition) []openai.Tool {
	tools := make([]openai.Tool, len(functions))
	for i, fn := range functions {
		properties := make(map[string]interface{}, len(fn.Parameters))
		for name, param := range fn.Parameters {
			prop := map[string]interface{}{
				"type":        param.Type,
				"description": param.Description,
			}
			if len(param.Enum) > 0 {
				prop["enum"] = param.Enum
			}
			properties[name] = prop
		}

		tools[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        fn.Name,
				Description: fn.Description,
				Parameters: map[string]interface{}{
					"type":       "object",
					"properties": properties,
					"required":   fn.RequiredParameters(),
				},
			},
		}
	}
	return tools
}

func fromOpenAIMessage(msg openai.ChatCompletionMessage) types.Message {
	out := types.Message{
		Role:    types.RoleAssistant,
		Content: msg.Content,
	}
	for _, call := range msg.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, types.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}
	return out
}
