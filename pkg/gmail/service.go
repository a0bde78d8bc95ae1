package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	triagedomain "replypilot-backend/internal/triage/domain"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// TokenUpdateFunc is a callback function that handles token updates
type TokenUpdateFunc = triagedomain.TokenUpdateFunc

type Service struct {
	clientID     string
	clientSecret string

	// clientOpts, when set, replaces the OAuth-wrapped transport entirely
	clientOpts []option.ClientOption
}

type notifyTokenSource struct {
	src      oauth2.TokenSource
	current  *oauth2.Token
	callback TokenUpdateFunc
}

func (s *notifyTokenSource) Token() (*oauth2.Token, error) {
	t, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	if s.callback != nil && t.RefreshToken != "" && t.RefreshToken != s.current.RefreshToken {
		s.current = t
		if err := s.callback(t); err != nil {
			log.Printf("[WARN] Failed to persist rotated refresh token: %v", err)
		}
	}
	return t, nil
}

func NewService(clientID, clientSecret string) *Service {
	return &Service{
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// GetGmailService creates a Gmail service from the user's refresh token.
// The access token is minted on demand and never stored.
func (s *Service) GetGmailService(ctx context.Context, refreshToken string, onTokenRefresh TokenUpdateFunc) (*gmail.Service, error) {
	if len(s.clientOpts) > 0 {
		srv, err := gmail.NewService(ctx, s.clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("unable to create Gmail service: %v", err)
		}
		return srv, nil
	}

	token := &oauth2.Token{
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		Expiry:       time.Now(), // force an immediate refresh
	}

	config := &oauth2.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		Endpoint:     google.Endpoint,
	}

	tokenSource := config.TokenSource(ctx, token)

	// Wrap token source to detect provider-side refresh token rotation
	wrappedSource := &notifyTokenSource{
		src:      tokenSource,
		current:  token,
		callback: onTokenRefresh,
	}

	client := oauth2.NewClient(ctx, wrappedSource)

	srv, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %v", err)
	}

	return srv, nil
}

// ListUnreadCandidates retrieves unread primary-inbox threads within the
// lookback window, excluding automated mail. Two independent filter layers
// apply: the search query (block-listed senders/subjects) and a header check
// on the first message of every matching thread.
func (s *Service) ListUnreadCandidates(ctx context.Context, refreshToken string, lookbackDays int, onTokenRefresh TokenUpdateFunc) ([]*triagedomain.CandidateThread, error) {
	srv, err := s.GetGmailService(ctx, refreshToken, onTokenRefresh)
	if err != nil {
		return nil, err
	}

	user := "me"
	query := BuildSearchQuery(lookbackDays)

	listResp, err := srv.Users.Threads.List(user).Q(query).MaxResults(maxCandidates).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to list threads: %v", err)
	}

	candidates := make([]*triagedomain.CandidateThread, 0, len(listResp.Threads))
	for _, t := range listResp.Threads {
		if len(candidates) >= maxCandidates {
			break
		}

		thread, err := srv.Users.Threads.Get(user, t.Id).Format("metadata").Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve thread %s: %v", t.Id, err)
		}
		if len(thread.Messages) == 0 {
			continue
		}

		first := thread.Messages[0]
		headers := firstMessageHeaders(first)
		if IsAutomated(headers) {
			continue
		}

		snippet := first.Snippet
		if snippet == "" {
			snippet = t.Snippet
		}

		candidates = append(candidates, &triagedomain.CandidateThread{
			ID:      thread.Id,
			Subject: subjectOrDefault(headers),
			Snippet: snippet,
		})
	}

	return candidates, nil
}

// CreateReplyDraft builds a reply addressed to stay within the given thread
// and stores it as a Gmail draft. Failures are logged and reported as false
// rather than propagated: the caller treats false as "draft not created" and
// moves on to the next candidate.
func (s *Service) CreateReplyDraft(ctx context.Context, refreshToken, threadID, body string, onTokenRefresh TokenUpdateFunc) bool {
	srv, err := s.GetGmailService(ctx, refreshToken, onTokenRefresh)
	if err != nil {
		log.Printf("[WARN] Unable to create Gmail service for draft: %v", err)
		return false
	}

	user := "me"
	thread, err := srv.Users.Threads.Get(user, threadID).Format("metadata").Context(ctx).Do()
	if err != nil {
		log.Printf("[WARN] Unable to retrieve thread %s for draft: %v", threadID, err)
		return false
	}
	if len(thread.Messages) == 0 {
		log.Printf("[WARN] Thread %s has no messages, skipping draft", threadID)
		return false
	}

	headers := firstMessageHeaders(thread.Messages[0])
	to := headerValue(headers, "Reply-To")
	if to == "" {
		to = headerValue(headers, "From")
	}
	if to == "" {
		log.Printf("[WARN] Thread %s has no sender address, skipping draft", threadID)
		return false
	}

	raw := buildReplyMessage(to, replySubject(subjectOrDefault(headers)), headerValue(headers, "Message-ID"), body)

	draft := &gmail.Draft{
		Message: &gmail.Message{
			Raw:      base64.URLEncoding.EncodeToString([]byte(raw)),
			ThreadId: threadID,
		},
	}

	if _, err := srv.Users.Drafts.Create(user, draft).Context(ctx).Do(); err != nil {
		log.Printf("[WARN] Unable to create draft for thread %s: %v", threadID, err)
		return false
	}

	return true
}

func firstMessageHeaders(msg *gmail.Message) []*gmail.MessagePartHeader {
	if msg == nil || msg.Payload == nil {
		return nil
	}
	return msg.Payload.Headers
}
