package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/harshinharshi/medical-chatbot/pkg/core"
	"github.com/harshinharshi/medical-chatbot/pkg/types"
)

// GeminiProvider implements Provider for Google's Gemini models via AI Studio.
// Gemini carries no tool-call ids on the wire, so the provider mints one per
// returned function call; the dispatch loop maintains the pairing from there.
type GeminiProvider struct {
	client *genai.Client
	config *Config
}

// NewGeminiProvider creates a new Gemini provider instance using AI Studio
func NewGeminiProvider(ctx context.Context, config *Config) (*GeminiProvider, error) {
	if config == nil {
		config = NewConfig()
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required for Gemini")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		config: config,
	}, nil
}

// Model returns the configured model name
func (p *GeminiProvider) Model() string {
	return p.config.Model
}

// Close releases the underlying API client
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

// Chat generates the next assistant message with function calling support
func (p *GeminiProvider) Chat(ctx context.Context, messages []types.Message, functions []core.FunctionDefinition) (types.Message, error) {
	if len(messages) == 0 {
		return types.Message{}, fmt.Errorf("%w: empty message log", core.ErrUpstreamUnavailable)
	}

	model := p.client.GenerativeModel(p.config.Model)
	model.SetTemperature(p.config.Temperature)
	if p.config.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(p.config.MaxTokens))
	}
	if len(functions) > 0 {
		model.Tools = []*genai.Tool{{FunctionDeclarations: toGeminiDeclarations(functions)}}
	}

	// System messages become the model's system instruction; the rest of the
	// log is replayed as chat history with the final message sent last.
	var contents []*genai.Content
	for _, msg := range messages {
		if msg.Role == types.RoleSystem {
			model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(msg.Content)}}
			continue
		}
		content, err := toGeminiContent(msg, messages)
		if err != nil {
			return types.Message{}, fmt.Errorf("%w: %v", core.ErrUpstreamUnavailable, err)
		}
		contents = append(contents, content)
	}
	if len(contents) == 0 {
		return types.Message{}, fmt.Errorf("%w: no sendable messages", core.ErrUpstreamUnavailable)
	}

	chat := model.StartChat()
	chat.History = contents[:len(contents)-1]
	last := contents[len(contents)-1]

	resp, err := chat.SendMessage(ctx, last.Parts...)
	if err != nil {
		return types.Message{}, fmt.Errorf("%w: %v", core.ErrUpstreamUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return types.Message{}, fmt.Errorf("%w: no candidates in Gemini response", core.ErrUpstreamUnavailable)
	}

	return fromGeminiContent(resp.Candidates[0].Content)
}

func toGeminiDeclarations(functions []core.FunctionDefinition) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, len(functions))
	for i, fn := range functions {
		properties := make(map[string]*genai.Schema, len(fn.Parameters))
		for name, param := range fn.Parameters {
			properties[name] = &genai.Schema{
				Type:        toGeminiType(param.Type),
				Description: param.Description,
				Enum:        param.Enum,
			}
		}
		decls[i] = &genai.FunctionDeclaration{
			Name:        fn.Name,
			Description: fn.Description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: properties,
				Required:   fn.RequiredParameters(),
			},
		}
	}
	return decls
}

func toGeminiType(t string) genai.Type {
	switch t {
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

func toGeminiContent(msg types.Message, log []types.Message) (*genai.Content, error) {
	switch msg.Role {
	case types.RoleUser:
		return &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(msg.Content)}}, nil

	case types.RoleAssistant:
		var parts []genai.Part
		if msg.Content != "" {
			parts = append(parts, genai.Text(msg.Content))
		}
		for _, call := range msg.ToolCalls {
			args := map[string]any{}
			if call.Arguments != "" {
				if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
					return nil, fmt.Errorf("invalid tool call arguments for %s: %v", call.Name, err)
				}
			}
			parts = append(parts, genai.FunctionCall{Name: call.Name, Args: args})
		}
		return &genai.Content{Role: "model", Parts: parts}, nil

	case types.RoleTool:
		name := toolCallName(log, msg.ToolCallID)
		return &genai.Content{
			Role: "function",
			Parts: []genai.Part{genai.FunctionResponse{
				Name:     name,
				Response: map[string]any{"result": msg.Content},
			}},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported message role %q", msg.Role)
	}
}

// toolCallName resolves a tool result back to the function name of its
// originating call.
func toolCallName(log []types.Message, callID string) string {
	for _, msg := range log {
		for _, call := range msg.ToolCalls {
			if call.ID == callID {
				return call.Name
			}
		}
	}
	return callID
}

func fromGeminiContent(content *genai.Content) (types.Message, error) {
	out := types.Message{Role: types.RoleAssistant}

	for _, part := range content.Parts {
		switch v := part.(type) {
		case genai.Text:
			out.Content += string(v)
		case genai.FunctionCall:
			args, err := json.Marshal(v.Args)
			if err != nil {
				return types.Message{}, fmt.Errorf("%w: failed to encode function call args: %v", core.ErrUpstreamUnavailable, err)
			}
			out.ToolCalls = append(out.ToolCalls, types.ToolCall{
				ID:        uuid.NewString(),
				Name:      v.Name,
				Arguments: string(args),
			})
		}
	}

	if out.Content == "" && len(out.ToolCalls) == 0 {
		return types.Message{}, fmt.Errorf("%w: no usable parts in Gemini response", core.ErrUpstreamUnavailable)
	}
	return out, nil
}
