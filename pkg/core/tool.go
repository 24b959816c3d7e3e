package core

import "context"

// Tool represents a capability the assistant can invoke during an exchange
type Tool interface {
	// Name returns the unique name of the tool
	Name() string

	// Description returns a description of what the tool does, shown to the model
	Description() string

	// Parameters returns the parameters that the tool accepts
	Parameters() map[string]ParameterDefinition

	// Execute executes the tool with the given JSON-encoded arguments
	Execute(ctx context.Context, arguments string) (string, error)
}

// ParameterDefinition defines a parameter for function calling
type ParameterDefinition struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Enum        []string `json:"enum,omitempty"`
}

// FunctionDefinition represents a tool rendered as a model-facing function definition
type FunctionDefinition struct {
	Name        string                         `json:"name"`
	Description string                         `json:"description"`
	Parameters  map[string]ParameterDefinition `json:"parameters"`
}

// ToFunctionDefinition converts a tool to a function definition
func ToFunctionDefinition(tool Tool) FunctionDefinition {
	return FunctionDefinition{
		Name:        tool.Name(),
		Description: tool.Description(),
		Parameters:  tool.Parameters(),
	}
}

// RequiredParameters returns the names of the definition's required parameters
func (d FunctionDefinition) RequiredParameters() []string {
	required := make([]string, 0, len(d.Parameters))
	for name, param := range d.Parameters {
		if param.Required {
			required = append(required, name)
		}
	}
	return required
}
