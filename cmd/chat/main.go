package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/harshinharshi/medical-chatbot/pkg/agent"
	"github.com/harshinharshi/medical-chatbot/pkg/config"
	"github.com/harshinharshi/medical-chatbot/pkg/embeddings"
	"github.com/harshinharshi/medical-chatbot/pkg/hospital"
	"github.com/harshinharshi/medical-chatbot/pkg/llm"
	"github.com/harshinharshi/medical-chatbot/pkg/policy"
	"github.com/harshinharshi/medical-chatbot/pkg/session"
	"github.com/harshinharshi/medical-chatbot/pkg/tools"
)

const chatThreadID = "main_conversation"

func main() {
	ctx := context.Background()

	// Keep stdout clean for the conversation; diagnostics go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	executor, cleanup, err := buildAssistant(ctx, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start assistant: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Println(boldCyan("Medical Assistant for Community Health Center Harichandanpur"))
	fmt.Println("Ask me about hospital policies, procedures, visiting hours, or appointments!")
	fmt.Println("Type 'quit' to exit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(boldGreen("You: "))
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "quit", "exit", "bye":
			fmt.Println("Thank you for using our medical assistant. Take care!")
			return
		case "":
			fmt.Println("Please enter a question or type 'quit' to exit.")
			fmt.Println()
			continue
		}

		response, err := executor.Execute(ctx, chatThreadID, input)
		if err != nil {
			response = "I apologize, but I encountered an error processing your request. Please try asking your question again."
			logger.Error("exchange failed", "error", err)
		}
		fmt.Printf("\nAssistant: %s\n\n", response)
	}
}

// buildAssistant wires the full dependency graph the same way the HTTP
// server does.
func buildAssistant(ctx context.Context, logger *slog.Logger) (*agent.Executor, func(), error) {
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	_, statErr := os.Stat(cfg.DatabasePath)
	freshDB := os.IsNotExist(statErr)

	store, err := hospital.Open(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	if freshDB {
		if err := store.Setup(ctx); err != nil {
			store.Close()
			return nil, nil, err
		}
		if err := store.Seed(ctx); err != nil {
			store.Close()
			return nil, nil, err
		}
	}

	embedder, err := embeddings.NewModel(embeddings.Config{
		Type:    cfg.EmbeddingType,
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	index, err := policy.NewIndex(embedder)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	if _, _, err := index.Build(ctx, cfg.PolicyPDFPath); err != nil {
		store.Close()
		return nil, nil, err
	}

	llmConfig := llm.NewConfig()
	llmConfig.Model = cfg.Model
	llmConfig.APIKey = cfg.APIKey
	llmConfig.BaseURL = cfg.BaseURL

	provider, err := llm.NewProvider(ctx, llmConfig)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	registry := tools.NewRegistry()
	for _, tool := range tools.DefaultToolSet(index, store) {
		if err := registry.Register(tool); err != nil {
			store.Close()
			return nil, nil, err
		}
	}

	executor, err := agent.NewExecutor(provider, registry, session.NewStore(), logger, agent.Options{
		MaxIterations: cfg.MaxIterations,
		ModelTimeout:  cfg.ModelTimeout,
		ToolTimeout:   cfg.ToolTimeout,
	})
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	cleanup := func() {
		store.Close()
		embedder.Close()
	}
	return executor, cleanup, nil
}
