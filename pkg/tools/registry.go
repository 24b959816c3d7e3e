package tools

import (
	"fmt"
	"sync"

	"github.com/harshinharshi/medical-chatbot/pkg/core"
)

// Registry keeps the mapping between tool names and implementations.
// Registration happens once at process start; afterwards the registry is
// read-only and shared across all conversations.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]core.Tool
	order []string // registration order, kept stable for the model's context
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]core.Tool),
	}
}

// Register inserts a tool when its name is not in use
func (r *Registry) Register(tool core.Tool) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	name := tool.Name()
	if name == "" {
		return fmt.Errorf("tool name is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("%w: %s", core.ErrDuplicateTool, name)
	}

	r.tools[name] = tool
	r.order = append(r.order, name)
	return nil
}

// Get fetches a tool by name
func (r *Registry) Get(name string) (core.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, exists := r.tools[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", core.ErrToolNotFound, name)
	}
	return tool, nil
}

// Definitions returns the model-facing function definitions of every
// registered tool, in registration order.
func (r *Registry) Definitions() []core.FunctionDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]core.FunctionDefinition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, core.ToFunctionDefinition(r.tools[name]))
	}
	return defs
}

// Len returns the number of registered tools
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}
