package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds process-wide configuration for the medical assistant.
type Config struct {
	APIKey        string        // Required: API key for the model provider
	BaseURL       string        // Base URL for OpenAI-compatible providers (defaults to Groq)
	Model         string        // Model name (a "gemini-" prefix selects the Gemini provider)
	EmbeddingType string        // "local" or "openai"
	DatabasePath  string        // SQLite file with doctors and appointments
	PolicyPDFPath string        // Hospital policy document
	ListenAddr    string        // HTTP listen address
	MaxIterations int           // Model/tool cycles allowed per exchange
	ModelTimeout  time.Duration // Per model invocation
	ToolTimeout   time.Duration // Per tool handler invocation
}

// FromEnv builds a configuration from environment variables.
func FromEnv() *Config {
	return &Config{
		APIKey:        firstEnv("GROQ_API_KEY", "OPENAI_API_KEY", "GOOGLE_API_KEY"),
		BaseURL:       os.Getenv("LLM_BASE_URL"),
		Model:         os.Getenv("LLM_MODEL"),
		EmbeddingType: os.Getenv("EMBEDDING_TYPE"),
		DatabasePath:  os.Getenv("HOSPITAL_DB"),
		PolicyPDFPath: os.Getenv("POLICY_PDF"),
		ListenAddr:    os.Getenv("LISTEN_ADDR"),
		MaxIterations: intEnv("MAX_ITERATIONS"),
		ModelTimeout:  durationEnv("MODEL_TIMEOUT"),
		ToolTimeout:   durationEnv("TOOL_TIMEOUT"),
	}
}

// Validate checks the configuration and sets defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API key is required (set GROQ_API_KEY, OPENAI_API_KEY or GOOGLE_API_KEY)")
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://api.groq.com/openai/v1"
	}
	if c.Model == "" {
		c.Model = "openai/gpt-oss-20b"
	}
	if c.EmbeddingType == "" {
		c.EmbeddingType = "local"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "hospital.db"
	}
	if c.PolicyPDFPath == "" {
		c.PolicyPDFPath = "data/hospital_policies.pdf"
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":8000"
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = 10
	}
	if c.ModelTimeout <= 0 {
		c.ModelTimeout = 60 * time.Second
	}
	if c.ToolTimeout <= 0 {
		c.ToolTimeout = 15 * time.Second
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func intEnv(key string) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0
	}
	return v
}

func durationEnv(key string) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return 0
	}
	return v
}
