package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/harshinharshi/medical-chatbot/pkg/core"
	"github.com/harshinharshi/medical-chatbot/pkg/llm"
	"github.com/harshinharshi/medical-chatbot/pkg/session"
	"github.com/harshinharshi/medical-chatbot/pkg/tools"
	"github.com/harshinharshi/medical-chatbot/pkg/types"
)

// state tracks where an exchange is in the model/tool cycle
type state int

const (
	stateAwaitingModel state = iota
	stateExecutingTools
	stateDone
	stateFailed
)

// Options tune executor behavior
type Options struct {
	MaxIterations int           // model/tool cycles allowed per exchange
	ModelTimeout  time.Duration // per model invocation
	ToolTimeout   time.Duration // per tool handler invocation
	SystemPrompt  string        // overrides the default prompt when set
}

// Executor runs the dispatch loop: it alternates between invoking the model
// and executing requested tools until the model produces a final answer.
// Tool failures become tool-result text so the model can self-correct; only
// model failures and budget exhaustion fail an exchange.
type Executor struct {
	provider llm.Provider
	registry *tools.Registry
	sessions *session.Store
	logger   *slog.Logger

	maxIterations int
	modelTimeout  time.Duration
	toolTimeout   time.Duration
	systemPrompt  string
}

// NewExecutor creates an executor over the given provider, registry and
// session store.
func NewExecutor(provider llm.Provider, registry *tools.Registry, sessions *session.Store, logger *slog.Logger, opts Options) (*Executor, error) {
	if provider == nil || registry == nil || sessions == nil {
		return nil, core.ErrNotInitialized
	}
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = 10
	}
	if opts.ModelTimeout <= 0 {
		opts.ModelTimeout = 60 * time.Second
	}
	if opts.ToolTimeout <= 0 {
		opts.ToolTimeout = 15 * time.Second
	}
	if opts.SystemPrompt == "" {
		opts.SystemPrompt = systemPrompt
	}

	return &Executor{
		provider:      provider,
		registry:      registry,
		sessions:      sessions,
		logger:        logger,
		maxIterations: opts.MaxIterations,
		modelTimeout:  opts.ModelTimeout,
		toolTimeout:   opts.ToolTimeout,
		systemPrompt:  opts.SystemPrompt,
	}, nil
}

// Execute runs one exchange: the user message is appended to the thread's
// log and the final assistant answer is returned. Exchanges on the same
// thread are serialized; the log is only ever appended to.
func (e *Executor) Execute(ctx context.Context, threadID, userInput string) (string, error) {
	thread := e.sessions.Get(threadID)
	thread.Lock()
	defer thread.Unlock()

	if thread.Len() == 0 {
		thread.Append(types.SystemMessage(e.systemPrompt))
	}
	thread.Append(types.UserMessage(userInput))

	var pending []types.ToolCall
	st := stateAwaitingModel
	cycles := 0

	for {
		switch st {
		case stateAwaitingModel:
			// One cycle is one model invocation plus the tool executions it
			// requests; the cap keeps tool-call ping-pong bounded.
			if cycles >= e.maxIterations {
				st = stateFailed
				continue
			}
			cycles++

			reply, err := e.invokeModel(ctx, thread.Messages())
			if err != nil {
				e.logger.Error("model invocation failed", "thread_id", threadID, "error", err)
				return "", err
			}
			thread.Append(reply)

			if reply.IsFinal() {
				st = stateDone
				continue
			}
			pending = reply.ToolCalls
			st = stateExecutingTools

		case stateExecutingTools:
			// Calls run strictly in the order the model listed them and each
			// result is appended before the next model invocation.
			for _, call := range pending {
				result := e.runTool(ctx, threadID, call)
				thread.Append(types.ToolMessage(call.ID, result))
			}
			pending = nil
			st = stateAwaitingModel

		case stateDone:
			messages := thread.Messages()
			return messages[len(messages)-1].Content, nil

		case stateFailed:
			e.logger.Error("exchange exceeded loop budget", "thread_id", threadID, "budget", e.maxIterations)
			return "", fmt.Errorf("%w: %d cycles", core.ErrLoopBudgetExceeded, e.maxIterations)
		}
	}
}

// invokeModel performs a single model call; transport and provider problems
// surface as core.ErrUpstreamUnavailable with no retry.
func (e *Executor) invokeModel(ctx context.Context, messages []types.Message) (types.Message, error) {
	mctx, cancel := context.WithTimeout(ctx, e.modelTimeout)
	defer cancel()

	reply, err := e.provider.Chat(mctx, messages, e.registry.Definitions())
	if err != nil {
		if errors.Is(err, core.ErrUpstreamUnavailable) {
			return types.Message{}, err
		}
		return types.Message{}, fmt.Errorf("%w: %v", core.ErrUpstreamUnavailable, err)
	}
	return reply, nil
}

// runTool executes one requested tool call. Unknown names and handler
// failures come back as error text, never as errors, so the model can adapt
// its next response.
func (e *Executor) runTool(ctx context.Context, threadID string, call types.ToolCall) string {
	tool, err := e.registry.Get(call.Name)
	if err != nil {
		e.logger.Warn("model requested unknown tool", "thread_id", threadID, "tool", call.Name)
		return fmt.Sprintf("Error: tool '%s' is not available.", call.Name)
	}

	tctx, cancel := context.WithTimeout(ctx, e.toolTimeout)
	defer cancel()

	start := time.Now()
	result, err := tool.Execute(tctx, call.Arguments)
	if err != nil {
		e.logger.Warn("tool execution failed",
			"thread_id", threadID, "tool", call.Name, "error", err, "duration", time.Since(start))
		return fmt.Sprintf("Error executing tool '%s': %v", call.Name, err)
	}

	e.logger.Debug("tool executed",
		"thread_id", threadID, "tool", call.Name, "duration", time.Since(start))
	return result
}
