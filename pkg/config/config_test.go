package config

import (
	"testing"
	"time"
)

func TestValidateDefaults(t *testing.T) {
	cfg := &Config{APIKey: "test-key"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Model != "openai/gpt-oss-20b" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.EmbeddingType != "local" {
		t.Errorf("EmbeddingType = %q", cfg.EmbeddingType)
	}
	if cfg.ListenAddr != ":8000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.MaxIterations != 10 {
		t.Errorf("MaxIterations = %d, want 10", cfg.MaxIterations)
	}
	if cfg.ModelTimeout != 60*time.Second || cfg.ToolTimeout != 15*time.Second {
		t.Errorf("timeouts = %v, %v", cfg.ModelTimeout, cfg.ToolTimeout)
	}
}

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate must fail without an API key")
	}
}

func TestValidateKeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		APIKey:        "test-key",
		Model:         "gemini-1.5-flash",
		MaxIterations: 3,
		ListenAddr:    ":9090",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.Model != "gemini-1.5-flash" || cfg.MaxIterations != 3 || cfg.ListenAddr != ":9090" {
		t.Errorf("explicit values overwritten: %+v", cfg)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "groq-key")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("LLM_MODEL", "openai/gpt-oss-120b")
	t.Setenv("LISTEN_ADDR", ":8080")
	t.Setenv("MAX_ITERATIONS", "5")

	cfg := FromEnv()
	if cfg.APIKey != "groq-key" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.Model != "openai/gpt-oss-120b" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.MaxIterations != 5 {
		t.Errorf("MaxIterations = %d, want 5", cfg.MaxIterations)
	}
}

func TestFromEnvTimeouts(t *testing.T) {
	t.Setenv("MODEL_TIMEOUT", "90s")
	t.Setenv("TOOL_TIMEOUT", "5s")

	cfg := FromEnv()
	if cfg.ModelTimeout != 90*time.Second {
		t.Errorf("ModelTimeout = %v, want 90s", cfg.ModelTimeout)
	}
	if cfg.ToolTimeout != 5*time.Second {
		t.Errorf("ToolTimeout = %v, want 5s", cfg.ToolTimeout)
	}
}

func TestFromEnvBadTimeoutFallsBackToDefault(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("MODEL_TIMEOUT", "ninety seconds")

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.ModelTimeout != 60*time.Second {
		t.Errorf("ModelTimeout = %v, want the 60s default", cfg.ModelTimeout)
	}
}

func TestFromEnvKeyPrecedence(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	if got := FromEnv().APIKey; got != "openai-key" {
		t.Errorf("APIKey = %q, want openai-key", got)
	}
}
