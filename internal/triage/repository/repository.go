package repository

import (
	"context"

	triagedomain "replypilot-backend/internal/triage/domain"
)

// ActivityLogRepository defines the interface for the per-user activity log.
// The log is append-only: no update or delete operations exist.
type ActivityLogRepository interface {
	// Append durably stores one entry; the timestamp is server-assigned
	Append(ctx context.Context, userID string, entry *triagedomain.ActivityLogEntry) error
	// Recent returns up to limit entries, most recent first
	Recent(ctx context.Context, userID string, limit int) ([]*triagedomain.ActivityLogEntry, error)
}
