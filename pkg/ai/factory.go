package ai

import (
	"fmt"

	"replypilot-backend/pkg/groq"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "groq" or "ollama"

	// Groq config
	GroqAPIKey string
	GroqModel  string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// NewCompletionService creates a CompletionService based on the config.
// This is the factory function - switch AI provider by changing config.Provider
func NewCompletionService(cfg Config) (CompletionService, error) {
	switch cfg.Provider {
	case ProviderGroq:
		if cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required for Groq provider")
		}
		return groq.NewClient(cfg.GroqAPIKey, cfg.GroqModel), nil

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	default:
		// Default to Groq if an API key is available, otherwise Ollama.
		// With both configured, Ollama backs up Groq outages.
		if cfg.GroqAPIKey != "" {
			primary := groq.NewClient(cfg.GroqAPIKey, cfg.GroqModel)
			if cfg.OllamaBaseURL != "" {
				return NewFallbackService(primary, NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel)), nil
			}
			return primary, nil
		}
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil
	}
}
