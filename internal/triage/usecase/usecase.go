package usecase

import (
	"context"

	triagedomain "replypilot-backend/internal/triage/domain"
)

// MailGateway is the narrow slice of the mail provider the pipeline needs
type MailGateway interface {
	ListUnreadCandidates(ctx context.Context, refreshToken string, lookbackDays int, onTokenRefresh triagedomain.TokenUpdateFunc) ([]*triagedomain.CandidateThread, error)
	CreateReplyDraft(ctx context.Context, refreshToken, threadID, body string, onTokenRefresh triagedomain.TokenUpdateFunc) bool
}

// DraftingService is the LLM surface the pipeline and chat endpoints use
type DraftingService interface {
	DraftReply(ctx context.Context, manifesto, emailContent string) (string, error)
	SummarizeActivity(ctx context.Context, entries []*triagedomain.ActivityLogEntry) (string, error)
	ChatReply(ctx context.Context, query string, entries []*triagedomain.ActivityLogEntry) (string, error)
}

// TriageUsecase defines the interface for triage use cases
type TriageUsecase interface {
	// Scan runs the triage pipeline once for a user: fetch candidates,
	// draft replies, store drafts, log activity. Synchronous; blocks until
	// all candidates are processed.
	Scan(ctx context.Context, userID string) (*triagedomain.ScanReport, error)
	// Chat answers a question using the most recent log entries as context
	Chat(ctx context.Context, userID, query string) (string, error)
	// ActivitySummary builds a status report over recent log entries
	ActivitySummary(ctx context.Context, userID string) (string, error)
	// RecentActivity returns up to limit entries, most recent first
	RecentActivity(ctx context.Context, userID string, limit int) ([]*triagedomain.ActivityLogEntry, error)
}
