package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/harshinharshi/medical-chatbot/pkg/agent"
	"github.com/harshinharshi/medical-chatbot/pkg/config"
	"github.com/harshinharshi/medical-chatbot/pkg/embeddings"
	"github.com/harshinharshi/medical-chatbot/pkg/hospital"
	"github.com/harshinharshi/medical-chatbot/pkg/llm"
	"github.com/harshinharshi/medical-chatbot/pkg/policy"
	"github.com/harshinharshi/medical-chatbot/pkg/server"
	"github.com/harshinharshi/medical-chatbot/pkg/session"
	"github.com/harshinharshi/medical-chatbot/pkg/tools"
)

func main() {
	ctx := context.Background()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting medical assistant server")

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Hospital database; seeded on first run so the appointment tools have
	// data to answer with.
	_, statErr := os.Stat(cfg.DatabasePath)
	freshDB := os.IsNotExist(statErr)

	store, err := hospital.Open(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open hospital database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if freshDB {
		logger.Info("seeding hospital database", "path", cfg.DatabasePath)
		if err := store.Setup(ctx); err != nil {
			logger.Error("failed to create schema", "error", err)
			os.Exit(1)
		}
		if err := store.Seed(ctx); err != nil {
			logger.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Policy index
	embedder, err := embeddings.NewModel(embeddings.Config{
		Type:    cfg.EmbeddingType,
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		logger.Error("failed to create embedding model", "error", err)
		os.Exit(1)
	}
	defer embedder.Close()

	index, err := policy.NewIndex(embedder)
	if err != nil {
		logger.Error("failed to create policy index", "error", err)
		os.Exit(1)
	}
	chunks, fromFallback, err := index.Build(ctx, cfg.PolicyPDFPath)
	if err != nil {
		logger.Error("failed to build policy index", "error", err)
		os.Exit(1)
	}
	logger.Info("policy index built", "chunks", chunks, "fallback", fromFallback)

	// Model provider
	llmConfig := llm.NewConfig()
	llmConfig.Model = cfg.Model
	llmConfig.APIKey = cfg.APIKey
	llmConfig.BaseURL = cfg.BaseURL

	provider, err := llm.NewProvider(ctx, llmConfig)
	if err != nil {
		logger.Error("failed to create LLM provider", "error", err)
		os.Exit(1)
	}
	logger.Info("LLM provider initialized", "model", provider.Model())

	// Tool registry
	registry := tools.NewRegistry()
	for _, tool := range tools.DefaultToolSet(index, store) {
		if err := registry.Register(tool); err != nil {
			logger.Error("failed to register tool", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("tool registry ready", "tools", registry.Len())

	executor, err := agent.NewExecutor(provider, registry, session.NewStore(), logger, agent.Options{
		MaxIterations: cfg.MaxIterations,
		ModelTimeout:  cfg.ModelTimeout,
		ToolTimeout:   cfg.ToolTimeout,
	})
	if err != nil {
		logger.Error("failed to create executor", "error", err)
		os.Exit(1)
	}

	srv := server.New(executor, logger)
	logger.Info("listening", "addr", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Handler()); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
