package repository

import (
	"context"

	authdomain "replypilot-backend/internal/auth/domain"
)

// UserRepository defines the interface for user account persistence
type UserRepository interface {
	// Find a user by Google subject id; returns (nil, nil) when absent
	FindByUID(ctx context.Context, uid string) (*authdomain.UserAccount, error)
	// Merge profile fields into the user document; refresh token is only
	// overwritten when non-empty
	UpsertProfile(ctx context.Context, uid, email, name, refreshToken string) error
	// Persist manifesto and lookback window from the setup form
	SaveSetup(ctx context.Context, uid, manifesto string, lookbackDays int) error
	// Overwrite the stored refresh token after a provider-side rotation
	UpdateRefreshToken(ctx context.Context, uid, refreshToken string) error
}
