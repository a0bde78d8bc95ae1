package ai

import "context"

// CompletionService is the interface for one-shot LLM text generation.
// Implement this interface to add new providers (Groq, Ollama, OpenAI, etc.)
type CompletionService interface {
	Complete(ctx context.Context, system, prompt string, temperature float64, maxTokens int) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGroq   ProviderType = "groq"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
