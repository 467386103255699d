package llm

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Provider != "groq" {
		t.Errorf("expected default provider groq, got %q", cfg.Provider)
	}
	if cfg.Groq.Model != "llama-3.3-70b-versatile" {
		t.Errorf("unexpected default groq model: %q", cfg.Groq.Model)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("unexpected default timeout: %s", cfg.Timeout)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("QUIZBEE_LLM_PROVIDER", "openai")
	t.Setenv("QUIZBEE_OPENAI_API_KEY", "sk-test")
	t.Setenv("QUIZBEE_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()

	if cfg.Provider != "openai" {
		t.Errorf("expected openai, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("expected API key from env, got %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("expected model override, got %q", cfg.OpenAI.Model)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"groq without key", Config{Provider: "groq"}, true},
		{"groq with key", Config{Provider: "groq", Groq: GroqConfig{APIKey: "gsk-x"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "wat"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverConfig_PrefersGroq(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-abc")
	t.Setenv("OPENAI_API_KEY", "sk-abc")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "groq" {
		t.Errorf("expected groq to win discovery, got %q", cfg.Provider)
	}
	if cfg.Groq.APIKey != "gsk-abc" {
		t.Errorf("expected discovered key, got %q", cfg.Groq.APIKey)
	}
}

func TestDiscoverConfig_NoneSet(t *testing.T) {
	for _, v := range []string{"GROQ_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY"} {
		t.Setenv(v, "")
	}

	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}
}
