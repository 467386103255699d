package llm

import (
	"context"
	"fmt"
	"io"
)

// NewProvider creates a Provider from configuration, wrapped with the
// request logging decorator. logw receives one line per request; pass nil
// to discard.
//
// No retry middleware is applied: a failed quiz generation surfaces to the
// learner, who retries manually from the UI.
func NewProvider(ctx context.Context, cfg Config, logw io.Writer) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "groq":
		base, err = NewGroqProvider(cfg.Groq)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(WithTimeout(base, cfg.Timeout), logw), nil
}

// NewProviderFromEnv builds a Provider from QUIZBEE_* env vars, falling
// back to probing the standard provider key vars.
func NewProviderFromEnv(ctx context.Context, logw io.Writer) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, logw)
}
