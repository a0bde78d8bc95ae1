package ai

import (
	"context"
	"log"
)

// FallbackService tries the primary provider first and falls back to the
// secondary when the primary fails. The secondary's error wins if both fail.
type FallbackService struct {
	primary   CompletionService
	secondary CompletionService
}

// NewFallbackService creates a new FallbackService
func NewFallbackService(primary, secondary CompletionService) *FallbackService {
	return &FallbackService{
		primary:   primary,
		secondary: secondary,
	}
}

// Complete implements CompletionService
func (f *FallbackService) Complete(ctx context.Context, system, prompt string, temperature float64, maxTokens int) (string, error) {
	result, err := f.primary.Complete(ctx, system, prompt, temperature, maxTokens)
	if err == nil {
		return result, nil
	}

	log.Printf("[WARN] Primary AI provider failed, falling back: %v", err)
	return f.secondary.Complete(ctx, system, prompt, temperature, maxTokens)
}
