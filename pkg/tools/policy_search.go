package tools

import (
	"context"
	"strings"

	"github.com/harshinharshi/medical-chatbot/pkg/core"
	"github.com/harshinharshi/medical-chatbot/pkg/policy"
)

const policySearchLimit = 3

// PolicySearchTool answers policy questions from the indexed hospital policy
// document. Lookup problems come back as explanatory text rather than errors
// so the conversation keeps flowing.
type PolicySearchTool struct {
	BaseTool
	index *policy.Index
}

// NewPolicySearchTool creates a policy search tool over the given index
func NewPolicySearchTool(index *policy.Index) *PolicySearchTool {
	return &PolicySearchTool{
		BaseTool: NewBaseTool(
			"search_hospital_policies",
			"Search hospital policies and procedures for specific information about patient care, "+
				"visiting hours, admission procedures, consent policies, confidentiality rules, bed management, "+
				"transfers, complaints, quality standards, and medicine management.",
		),
		index: index,
	}
}

// Parameters returns the parameters that the tool accepts
func (t *PolicySearchTool) Parameters() map[string]core.ParameterDefinition {
	return map[string]core.ParameterDefinition{
		"query": {
			Type:        "string",
			Description: "Free-text question about hospital policies or procedures",
			Required:    true,
		},
	}
}

// Execute searches the policy index and returns the best matching fragments
func (t *PolicySearchTool) Execute(ctx context.Context, arguments string) (string, error) {
	var args struct {
		Query string `json:"query"`
	}
	if err := decodeArguments(arguments, &args); err != nil {
		return "", err
	}

	if t.index == nil {
		return "Error: Hospital policies database is not available. Please ensure the policy PDF exists.", nil
	}

	fragments, err := t.index.Search(ctx, args.Query, policySearchLimit)
	if err != nil {
		return "", err
	}
	if len(fragments) == 0 {
		return "No relevant hospital policies found for your query.", nil
	}

	return "Hospital Policies Information:\n" + strings.Join(fragments, "\n\n"), nil
}
