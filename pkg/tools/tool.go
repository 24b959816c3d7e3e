package tools

import (
	"encoding/json"
	"fmt"

	"github.com/harshinharshi/medical-chatbot/pkg/core"
)

// BaseTool carries the name and description shared by all tool implementations
type BaseTool struct {
	name        string
	description string
}

// NewBaseTool creates a new BaseTool instance
func NewBaseTool(name, description string) BaseTool {
	return BaseTool{
		name:        name,
		description: description,
	}
}

// Name returns the name of the tool
func (t BaseTool) Name() string {
	return t.name
}

// Description returns a description of what the tool does
func (t BaseTool) Description() string {
	return t.description
}

// Parameters returns the parameters that the tool accepts
func (t BaseTool) Parameters() map[string]core.ParameterDefinition {
	return map[string]core.ParameterDefinition{}
}

// decodeArguments unmarshals the model-supplied JSON arguments into dst.
// An empty argument string is treated as an empty object.
func decodeArguments(arguments string, dst any) error {
	if arguments == "" {
		arguments = "{}"
	}
	if err := json.Unmarshal([]byte(arguments), dst); err != nil {
		return fmt.Errorf("invalid tool arguments: %w", err)
	}
	return nil
}
