package clients

import (
	"context"
	"fmt"

	"fakenews-detector/internal/config"
)

// TextGenerator sends one prompt to a hosted language model and returns the
// raw text it produced. Implementations make exactly one upstream call.
type TextGenerator interface {
	GenerateText(ctx context.Context, agentName, prompt string) (string, error)
	Model() string
}

// NewTextGenerator builds the client for the provider selected in cfg
func NewTextGenerator(ctx context.Context, cfg *config.Config) (TextGenerator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		client, err := NewGeminiClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.ProviderAnthropic:
		return NewAnthropicClient(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported upstream provider %q", cfg.Provider)
	}
}
