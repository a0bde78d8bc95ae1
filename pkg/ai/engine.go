package ai

import (
	"context"
	"fmt"
	"strings"

	triagedomain "replypilot-backend/internal/triage/domain"
)

const (
	draftTemperature = 0.7
	draftMaxTokens   = 1024

	summarySystemPrompt = "You are a professional coordinator. Summarize the following email triage activity into a short, clear status report for the user."
	chatSystemPrompt    = "You are the user's email assistant. Answer the question using the recent triage activity below as context."
)

// DraftingEngine wraps a CompletionService with the three prompt shapes used
// by this system: reply drafting, activity summarization and chat. Stateless;
// one synchronous call per operation.
type DraftingEngine struct {
	svc CompletionService
}

// NewDraftingEngine creates a new DraftingEngine
func NewDraftingEngine(svc CompletionService) *DraftingEngine {
	return &DraftingEngine{svc: svc}
}

// DraftReply generates a reply to emailContent in the persona described by
// the user's manifesto.
func (e *DraftingEngine) DraftReply(ctx context.Context, manifesto, emailContent string) (string, error) {
	system := fmt.Sprintf("strictly follow this manifesto for persona, tone, logic: %s", manifesto)
	prompt := fmt.Sprintf("draft a response to this email: %s", emailContent)
	return e.svc.Complete(ctx, system, prompt, draftTemperature, draftMaxTokens)
}

// SummarizeActivity turns logged triage actions into a status report.
func (e *DraftingEngine) SummarizeActivity(ctx context.Context, entries []*triagedomain.ActivityLogEntry) (string, error) {
	if len(entries) == 0 {
		return "No activity to report yet.", nil
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s: %s", entry.Subject, entry.Action))
	}

	return e.svc.Complete(ctx, summarySystemPrompt, strings.Join(lines, "\n"), draftTemperature, draftMaxTokens)
}

// ChatReply answers a free-form user question with recent log entries as
// context. The query is passed through as the user turn untouched.
func (e *DraftingEngine) ChatReply(ctx context.Context, query string, entries []*triagedomain.ActivityLogEntry) (string, error) {
	var system strings.Builder
	system.WriteString(chatSystemPrompt)
	system.WriteString("\n\nRecent activity:\n")
	for _, entry := range entries {
		system.WriteString(fmt.Sprintf("%s | %s\n", entry.Subject, entry.Action))
	}

	return e.svc.Complete(ctx, system.String(), query, draftTemperature, draftMaxTokens)
}
