package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	authdomain "replypilot-backend/internal/auth/domain"
	authdto "replypilot-backend/internal/auth/dto"
	"replypilot-backend/internal/auth/repository"
	"replypilot-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailv1 "google.golang.org/api/gmail/v1"
	"google.golang.org/api/idtoken"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo    repository.UserRepository
	oauthConfig *oauth2.Config
	config      *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURI,
		Scopes: []string{
			gmailv1.GmailModifyScope,
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &authUsecase{
		userRepo:    userRepo,
		oauthConfig: oauthConfig,
		config:      cfg,
	}
}

func (u *authUsecase) LoginURL(state string) string {
	// Offline access plus forced approval so Google returns a refresh token
	return u.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (u *authUsecase) HandleCallback(ctx context.Context, code string) (*authdomain.UserAccount, error) {
	token, err := u.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("no id_token in token response")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, u.config.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify Google ID token: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	uid := payload.Subject
	if uid == "" || email == "" {
		return nil, errors.New("incomplete identity in Google ID token")
	}

	if err := u.userRepo.UpsertProfile(ctx, uid, email, name, token.RefreshToken); err != nil {
		return nil, err
	}

	// Re-read so an existing manifesto/lookback survives the merge write
	account, err := u.userRepo.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errors.New("user account not found after upsert")
	}

	return account, nil
}

func (u *authUsecase) IssueSession(user *authdomain.UserAccount) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.UID,
		"email":   user.Email,
		"exp":     time.Now().Add(u.config.SessionExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.SessionSecret))
}

func (u *authUsecase) ValidateSession(tokenString string) (*authdto.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(u.config.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired session")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid session claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, errors.New("invalid session claims")
	}
	email, _ := claims["email"].(string)

	return &authdto.SessionClaims{
		UserID: userID,
		Email:  email,
	}, nil
}

func (u *authUsecase) SaveSetup(ctx context.Context, uid, manifesto string, lookbackDays int) error {
	return u.userRepo.SaveSetup(ctx, uid, manifesto, lookbackDays)
}

func (u *authUsecase) GetAccount(ctx context.Context, uid string) (*authdomain.UserAccount, error) {
	return u.userRepo.FindByUID(ctx, uid)
}
