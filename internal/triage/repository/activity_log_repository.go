package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	triagedomain "replypilot-backend/internal/triage/domain"
)

const (
	usersCollection = "users"
	logsCollection  = "logs"
)

// activityLogRepository implements ActivityLogRepository on top of the
// logs subcollection of the user document
type activityLogRepository struct {
	client *firestore.Client
}

// NewActivityLogRepository creates a new instance of activityLogRepository
func NewActivityLogRepository(client *firestore.Client) ActivityLogRepository {
	return &activityLogRepository{
		client: client,
	}
}

func (r *activityLogRepository) Append(ctx context.Context, userID string, entry *triagedomain.ActivityLogEntry) error {
	_, _, err := r.client.Collection(usersCollection).Doc(userID).Collection(logsCollection).Add(ctx, map[string]interface{}{
		"subject":   entry.Subject,
		"recipient": entry.Recipient,
		"action":    entry.Action,
		"timestamp": firestore.ServerTimestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to append activity log for user %s: %w", userID, err)
	}
	return nil
}

func (r *activityLogRepository) Recent(ctx context.Context, userID string, limit int) ([]*triagedomain.ActivityLogEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	iter := r.client.Collection(usersCollection).Doc(userID).Collection(logsCollection).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	entries := make([]*triagedomain.ActivityLogEntry, 0, limit)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read activity log for user %s: %w", userID, err)
		}

		var entry triagedomain.ActivityLogEntry
		if err := snap.DataTo(&entry); err != nil {
			return nil, fmt.Errorf("failed to decode activity log entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}
