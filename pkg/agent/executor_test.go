package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/harshinharshi/medical-chatbot/pkg/core"
	"github.com/harshinharshi/medical-chatbot/pkg/session"
	"github.com/harshinharshi/medical-chatbot/pkg/tools"
	"github.com/harshinharshi/medical-chatbot/pkg/types"
)

// scriptedProvider plays back a fixed sequence of assistant messages
type scriptedProvider struct {
	replies []types.Message
	err     error
	calls   int
}

func (p *scriptedProvider) Chat(ctx context.Context, messages []types.Message, functions []core.FunctionDefinition) (types.Message, error) {
	if p.err != nil {
		return types.Message{}, p.err
	}
	if p.calls >= len(p.replies) {
		return types.Message{}, fmt.Errorf("no scripted reply for call %d", p.calls)
	}
	reply := p.replies[p.calls]
	p.calls++
	return reply, nil
}

func (p *scriptedProvider) Model() string { return "scripted" }

// echoTool records its invocations and echoes its arguments
type echoTool struct {
	tools.BaseTool
	invocations []string
	fail        bool
}

func newEchoTool(name string, fail bool) *echoTool {
	return &echoTool{
		BaseTool: tools.NewBaseTool(name, "test tool"),
		fail:     fail,
	}
}

func (t *echoTool) Execute(ctx context.Context, arguments string) (string, error) {
	t.invocations = append(t.invocations, arguments)
	if t.fail {
		return "", errors.New("boom")
	}
	return "echo: " + arguments, nil
}

func newTestExecutor(t *testing.T, provider *scriptedProvider, toolset ...core.Tool) (*Executor, *session.Store) {
	t.Helper()

	registry := tools.NewRegistry()
	for _, tool := range toolset {
		if err := registry.Register(tool); err != nil {
			t.Fatalf("failed to register tool: %v", err)
		}
	}

	sessions := session.NewStore()
	executor, err := NewExecutor(provider, registry, sessions, slog.Default(), Options{MaxIterations: 5})
	if err != nil {
		t.Fatalf("failed to create executor: %v", err)
	}
	return executor, sessions
}

func TestExecuteFinalAnswerWithoutTools(t *testing.T) {
	provider := &scriptedProvider{replies: []types.Message{
		{Role: types.RoleAssistant, Content: "Visiting hours are before and after doctor rounds."},
	}}
	executor, sessions := newTestExecutor(t, provider)

	answer, err := executor.Execute(context.Background(), "t1", "What are the visiting hours?")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if answer != "Visiting hours are before and after doctor rounds." {
		t.Errorf("unexpected answer: %q", answer)
	}

	log := sessions.Snapshot("t1")
	if len(log) != 3 {
		t.Fatalf("log length = %d, want 3 (system, user, assistant)", len(log))
	}
	if log[0].Role != types.RoleSystem || log[1].Role != types.RoleUser || log[2].Role != types.RoleAssistant {
		t.Errorf("unexpected role sequence: %s, %s, %s", log[0].Role, log[1].Role, log[2].Role)
	}
}

func TestExecuteLogGrowthOverTurns(t *testing.T) {
	const turns = 4

	replies := make([]types.Message, turns)
	for i := range replies {
		replies[i] = types.Message{Role: types.RoleAssistant, Content: fmt.Sprintf("answer %d", i)}
	}
	executor, sessions := newTestExecutor(t, &scriptedProvider{replies: replies})

	prevLen := 0
	for i := 0; i < turns; i++ {
		if _, err := executor.Execute(context.Background(), "growth", fmt.Sprintf("question %d", i)); err != nil {
			t.Fatalf("turn %d failed: %v", i, err)
		}
		log := sessions.Snapshot("growth")
		if len(log) <= prevLen {
			t.Errorf("log did not grow on turn %d: %d -> %d", i, prevLen, len(log))
		}
		prevLen = len(log)
	}

	// system + N*(user+assistant) with zero tool calls per turn
	want := 1 + turns*2
	if prevLen != want {
		t.Errorf("final log length = %d, want %d", prevLen, want)
	}
}

func TestExecuteToolCallPairing(t *testing.T) {
	echo := newEchoTool("lookup", false)
	provider := &scriptedProvider{replies: []types.Message{
		{
			Role: types.RoleAssistant,
			ToolCalls: []types.ToolCall{
				{ID: "call-1", Name: "lookup", Arguments: `{"q":"first"}`},
				{ID: "call-2", Name: "lookup", Arguments: `{"q":"second"}`},
			},
		},
		{Role: types.RoleAssistant, Content: "done"},
	}}
	executor, sessions := newTestExecutor(t, provider, echo)

	answer, err := executor.Execute(context.Background(), "pairing", "look things up")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if answer != "done" {
		t.Errorf("unexpected answer: %q", answer)
	}

	// Tools run in listed order with their arguments intact
	if len(echo.invocations) != 2 {
		t.Fatalf("tool invoked %d times, want 2", len(echo.invocations))
	}
	if echo.invocations[0] != `{"q":"first"}` || echo.invocations[1] != `{"q":"second"}` {
		t.Errorf("tool arguments out of order: %v", echo.invocations)
	}

	log := sessions.Snapshot("pairing")
	assertToolPairing(t, log)
}

// assertToolPairing checks that every tool call is answered by exactly one
// tool result, in order, before the next assistant message.
func assertToolPairing(t *testing.T, log []types.Message) {
	t.Helper()

	for i, msg := range log {
		if msg.Role != types.RoleAssistant || len(msg.ToolCalls) == 0 {
			continue
		}
		for j, call := range msg.ToolCalls {
			idx := i + 1 + j
			if idx >= len(log) {
				t.Fatalf("tool call %s has no result message", call.ID)
			}
			result := log[idx]
			if result.Role != types.RoleTool {
				t.Fatalf("message %d after tool call %s has role %s, want tool", idx, call.ID, result.Role)
			}
			if result.ToolCallID != call.ID {
				t.Errorf("tool result %d answers %s, want %s", idx, result.ToolCallID, call.ID)
			}
		}
	}
}

func TestExecuteToolFailureBecomesResult(t *testing.T) {
	tests := []struct {
		name     string
		toolName string // name the model asks for
		fail     bool
		want     string
	}{
		{
			name:     "handler failure",
			toolName: "lookup",
			fail:     true,
			want:     "Error executing tool 'lookup'",
		},
		{
			name:     "unknown tool",
			toolName: "nonexistent",
			want:     "Error: tool 'nonexistent' is not available.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &scriptedProvider{replies: []types.Message{
				{
					Role:      types.RoleAssistant,
					ToolCalls: []types.ToolCall{{ID: "c1", Name: tt.toolName, Arguments: "{}"}},
				},
				{Role: types.RoleAssistant, Content: "recovered"},
			}}
			executor, sessions := newTestExecutor(t, provider, newEchoTool("lookup", tt.fail))

			answer, err := executor.Execute(context.Background(), "fail-"+tt.name, "go")
			if err != nil {
				t.Fatalf("tool failure must not fail the exchange: %v", err)
			}
			if answer != "recovered" {
				t.Errorf("unexpected answer: %q", answer)
			}

			log := sessions.Snapshot("fail-" + tt.name)
			var result *types.Message
			for i := range log {
				if log[i].Role == types.RoleTool {
					result = &log[i]
					break
				}
			}
			if result == nil {
				t.Fatal("no tool result in log")
			}
			if !strings.Contains(result.Content, tt.want) {
				t.Errorf("tool result %q does not contain %q", result.Content, tt.want)
			}
			if result.ToolCallID != "c1" {
				t.Errorf("tool result answers %q, want c1", result.ToolCallID)
			}
		})
	}
}

// stalledTool blocks until its context is cancelled
type stalledTool struct {
	tools.BaseTool
}

func (t *stalledTool) Execute(ctx context.Context, arguments string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestExecuteToolTimeoutBecomesResult(t *testing.T) {
	provider := &scriptedProvider{replies: []types.Message{
		{
			Role:      types.RoleAssistant,
			ToolCalls: []types.ToolCall{{ID: "c1", Name: "slow", Arguments: "{}"}},
		},
		{Role: types.RoleAssistant, Content: "recovered"},
	}}

	registry := tools.NewRegistry()
	if err := registry.Register(&stalledTool{BaseTool: tools.NewBaseTool("slow", "never returns")}); err != nil {
		t.Fatalf("failed to register tool: %v", err)
	}
	sessions := session.NewStore()
	executor, err := NewExecutor(provider, registry, sessions, slog.Default(), Options{
		MaxIterations: 5,
		ToolTimeout:   10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("failed to create executor: %v", err)
	}

	answer, err := executor.Execute(context.Background(), "slow-tool", "go")
	if err != nil {
		t.Fatalf("a tool timeout must not fail the exchange: %v", err)
	}
	if answer != "recovered" {
		t.Errorf("unexpected answer: %q", answer)
	}

	log := sessions.Snapshot("slow-tool")
	var result *types.Message
	for i := range log {
		if log[i].Role == types.RoleTool {
			result = &log[i]
			break
		}
	}
	if result == nil {
		t.Fatal("no tool result in log")
	}
	if !strings.Contains(result.Content, "Error executing tool 'slow'") {
		t.Errorf("tool result %q does not report the timeout", result.Content)
	}
}

// stalledProvider blocks until its context is cancelled
type stalledProvider struct{}

func (p *stalledProvider) Chat(ctx context.Context, messages []types.Message, functions []core.FunctionDefinition) (types.Message, error) {
	<-ctx.Done()
	return types.Message{}, ctx.Err()
}

func (p *stalledProvider) Model() string { return "stalled" }

func TestExecuteModelTimeout(t *testing.T) {
	registry := tools.NewRegistry()
	executor, err := NewExecutor(&stalledProvider{}, registry, session.NewStore(), slog.Default(), Options{
		MaxIterations: 5,
		ModelTimeout:  10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("failed to create executor: %v", err)
	}

	_, err = executor.Execute(context.Background(), "slow-model", "hello")
	if !errors.Is(err, core.ErrUpstreamUnavailable) {
		t.Errorf("error = %v, want ErrUpstreamUnavailable", err)
	}
}

func TestExecuteUpstreamFailure(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("connection refused")}
	executor, _ := newTestExecutor(t, provider)

	_, err := executor.Execute(context.Background(), "down", "hello")
	if !errors.Is(err, core.ErrUpstreamUnavailable) {
		t.Errorf("error = %v, want ErrUpstreamUnavailable", err)
	}
}

func TestExecuteLoopBudgetExceeded(t *testing.T) {
	// The model keeps asking for tools and never produces a final answer.
	replies := make([]types.Message, 10)
	for i := range replies {
		replies[i] = types.Message{
			Role:      types.RoleAssistant,
			ToolCalls: []types.ToolCall{{ID: fmt.Sprintf("c%d", i), Name: "lookup", Arguments: "{}"}},
		}
	}
	executor, _ := newTestExecutor(t, &scriptedProvider{replies: replies}, newEchoTool("lookup", false))

	_, err := executor.Execute(context.Background(), "pingpong", "loop forever")
	if !errors.Is(err, core.ErrLoopBudgetExceeded) {
		t.Errorf("error = %v, want ErrLoopBudgetExceeded", err)
	}
}

func TestNewExecutorRequiresDependencies(t *testing.T) {
	_, err := NewExecutor(nil, nil, nil, nil, Options{})
	if !errors.Is(err, core.ErrNotInitialized) {
		t.Errorf("error = %v, want ErrNotInitialized", err)
	}
}
