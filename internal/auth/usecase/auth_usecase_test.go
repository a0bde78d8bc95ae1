package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "replypilot-backend/internal/auth/domain"
	"replypilot-backend/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		SessionSecret:      "test-secret",
		SessionExpiry:      time.Hour,
		GoogleClientID:     "client-id.apps.googleusercontent.com",
		GoogleClientSecret: "client-secret",
		GoogleRedirectURI:  "http://localhost:8080/callback",
	}
}

func TestSessionRoundtrip(t *testing.T) {
	uc := NewAuthUsecase(nil, testConfig())

	user := &authdomain.UserAccount{UID: "user-1", Email: "user@example.com"}
	token, err := uc.IssueSession(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := uc.ValidateSession(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateSessionRejectsGarbage(t *testing.T) {
	uc := NewAuthUsecase(nil, testConfig())

	_, err := uc.ValidateSession("not-a-token")
	assert.Error(t, err)
}

func TestValidateSessionRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthUsecase(nil, testConfig())

	otherCfg := testConfig()
	otherCfg.SessionSecret = "different-secret"
	verifier := NewAuthUsecase(nil, otherCfg)

	token, err := issuer.IssueSession(&authdomain.UserAccount{UID: "user-1", Email: "user@example.com"})
	require.NoError(t, err)

	_, err = verifier.ValidateSession(token)
	assert.Error(t, err)
}

func TestValidateSessionRejectsExpired(t *testing.T) {
	cfg := testConfig()
	cfg.SessionExpiry = -time.Minute
	uc := NewAuthUsecase(nil, cfg)

	token, err := uc.IssueSession(&authdomain.UserAccount{UID: "user-1", Email: "user@example.com"})
	require.NoError(t, err)

	_, err = uc.ValidateSession(token)
	assert.Error(t, err)
}

func TestLoginURL(t *testing.T) {
	uc := NewAuthUsecase(nil, testConfig())

	url := uc.LoginURL("state-123")

	assert.Contains(t, url, "accounts.google.com")
	assert.Contains(t, url, "state=state-123")
	assert.Contains(t, url, "access_type=offline")
	assert.Contains(t, url, "prompt=consent")
	assert.Contains(t, url, "gmail.modify")
	assert.Contains(t, url, "client-id.apps.googleusercontent.com")
}
