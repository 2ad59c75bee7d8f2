// Package embeddings provides clients for external embedding providers.
// Each provider turns text into a fixed-length vector; callers treat the
// provider as unreliable and substitute a zero vector on failure.
package embeddings

import (
	"context"
	"fmt"
)

// Provider is the interface all embedding backends implement.
type Provider interface {
	// Embed converts text into a numeric vector. The dimensionality is
	// provider-determined but constant for a given model.
	Embed(ctx context.Context, text string) ([]float64, error)
}

// ProviderConfig holds the configuration needed to create a provider.
type ProviderConfig struct {
	Provider string // "ollama" | "openai"
	BaseURL  string
	APIKey   string
	Model    string
}

// NewProvider creates the appropriate provider based on config.
func NewProvider(cfg ProviderConfig) (Provider, error) {
	switch cfg.Provider {
	case "ollama":
		return NewOllamaProvider(cfg.BaseURL, cfg.Model), nil
	case "openai":
		return NewOpenAIProvider(cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported embeddings provider: %s", cfg.Provider)
	}
}
