package token

import (
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"github.com/harshinharshi/medical-chatbot/pkg/types"
)

// Counter estimates token usage for a conversation so the invoker can refuse
// over-budget logs before spending an upstream call.
type Counter struct {
	encoding    *tiktoken.Tiktoken
	contextSize int
}

// NewCounter creates a token counter for the given model. Models without a
// known encoding fall back to a word-ratio estimate.
func NewCounter(model string) *Counter {
	encoding, _ := tiktoken.GetEncoding("cl100k_base")
	return &Counter{
		encoding:    encoding,
		contextSize: contextSizeFor(model),
	}
}

// CountTokens counts the number of tokens in a text
func (c *Counter) CountTokens(text string) int {
	if text == "" {
		return 0
	}
	if c.encoding == nil {
		// Rough approximation: 100 tokens per 75 words
		return len(strings.Fields(text)) * 100 / 75
	}
	return len(c.encoding.Encode(text, nil, nil))
}

// CountMessagesTokens counts the total number of tokens in a message log
func (c *Counter) CountMessagesTokens(messages []types.Message) int {
	tokensPerMessage := 3 // every message follows <im_start>{role/name}\n{content}<im_end>\n
	tokensPerName := 1    // role is always required and is 1 token

	total := 0
	for _, message := range messages {
		total += tokensPerMessage + tokensPerName
		total += c.CountTokens(message.Content)
		for _, call := range message.ToolCalls {
			total += c.CountTokens(call.Name) + c.CountTokens(call.Arguments)
		}
	}
	total += 3 // every reply is primed with <im_start>assistant
	return total
}

// ContextSize returns the maximum context size assumed for the model
func (c *Counter) ContextSize() int {
	return c.contextSize
}

// Fits reports whether the message log fits the model's context window
func (c *Counter) Fits(messages []types.Message) bool {
	return c.CountMessagesTokens(messages) <= c.contextSize
}

func contextSizeFor(model string) int {
	switch {
	case strings.HasPrefix(model, "gpt-3.5"):
		return 4096
	case strings.HasPrefix(model, "gemini"):
		return 32768
	default:
		return 8192
	}
}
