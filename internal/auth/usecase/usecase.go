package usecase

import (
	"context"

	authdomain "replypilot-backend/internal/auth/domain"
	authdto "replypilot-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication use cases
type AuthUsecase interface {
	// LoginURL builds the Google consent URL for the given CSRF state,
	// requesting offline access so a refresh token is issued
	LoginURL(state string) string
	// HandleCallback exchanges the authorization code, verifies the ID token
	// against the configured client id and upserts the user account
	HandleCallback(ctx context.Context, code string) (*authdomain.UserAccount, error)
	// IssueSession mints the signed session cookie value for a user
	IssueSession(user *authdomain.UserAccount) (string, error)
	// ValidateSession parses and verifies a session cookie value
	ValidateSession(token string) (*authdto.SessionClaims, error)
	// SaveSetup persists the manifesto and lookback window
	SaveSetup(ctx context.Context, uid, manifesto string, lookbackDays int) error
	// GetAccount loads a user account; returns (nil, nil) when absent
	GetAccount(ctx context.Context, uid string) (*authdomain.UserAccount, error)
}
