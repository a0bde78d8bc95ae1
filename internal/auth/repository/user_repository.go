package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	authdomain "replypilot-backend/internal/auth/domain"
)

const usersCollection = "users"

// userRepository implements UserRepository on top of Firestore
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(client *firestore.Client) UserRepository {
	return &userRepository{
		client: client,
	}
}

func (r *userRepository) FindByUID(ctx context.Context, uid string) (*authdomain.UserAccount, error) {
	snap, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if snap != nil && !snap.Exists() {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", uid, err)
	}

	var account authdomain.UserAccount
	if err := snap.DataTo(&account); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", uid, err)
	}
	return &account, nil
}

func (r *userRepository) UpsertProfile(ctx context.Context, uid, email, name, refreshToken string) error {
	fields := map[string]interface{}{
		"uid":        uid,
		"email":      email,
		"name":       name,
		"last_login": firestore.ServerTimestamp,
	}
	// Google only returns a refresh token on first consent (or re-consent);
	// an empty one must not clobber the stored secret.
	if refreshToken != "" {
		fields["refresh_token"] = refreshToken
	}

	_, err := r.client.Collection(usersCollection).Doc(uid).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", uid, err)
	}
	return nil
}

func (r *userRepository) SaveSetup(ctx context.Context, uid, manifesto string, lookbackDays int) error {
	if lookbackDays <= 0 {
		lookbackDays = 1
	}

	_, err := r.client.Collection(usersCollection).Doc(uid).Set(ctx, map[string]interface{}{
		"manifesto":         manifesto,
		"lookback_duration": lookbackDays,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to save setup for user %s: %w", uid, err)
	}
	return nil
}

func (r *userRepository) UpdateRefreshToken(ctx context.Context, uid, refreshToken string) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Set(ctx, map[string]interface{}{
		"refresh_token": refreshToken,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for user %s: %w", uid, err)
	}
	return nil
}
