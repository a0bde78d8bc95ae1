package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	authrepo "replypilot-backend/internal/auth/repository"
	triagedomain "replypilot-backend/internal/triage/domain"
	"replypilot-backend/internal/triage/repository"

	"golang.org/x/oauth2"
)

// ErrNotConfigured means the user has no manifesto on file; the caller
// should redirect to setup.
var ErrNotConfigured = errors.New("account not configured")

// ErrScanInProgress means another scan for the same user is still running.
var ErrScanInProgress = errors.New("scan already in progress")

// chatContextLimit bounds how many log entries feed the chat and summary
// prompts.
const chatContextLimit = 10

// triageUsecase implements TriageUsecase interface
type triageUsecase struct {
	userRepo    authrepo.UserRepository
	logRepo     repository.ActivityLogRepository
	gateway     MailGateway
	engine      DraftingService
	callTimeout time.Duration

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewTriageUsecase creates a new instance of triageUsecase
func NewTriageUsecase(
	userRepo authrepo.UserRepository,
	logRepo repository.ActivityLogRepository,
	gateway MailGateway,
	engine DraftingService,
	callTimeout time.Duration,
) TriageUsecase {
	if callTimeout <= 0 {
		callTimeout = 30 * time.Second
	}
	return &triageUsecase{
		userRepo:    userRepo,
		logRepo:     logRepo,
		gateway:     gateway,
		engine:      engine,
		callTimeout: callTimeout,
		inflight:    make(map[string]struct{}),
	}
}

func (u *triageUsecase) beginScan(userID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, running := u.inflight[userID]; running {
		return false
	}
	u.inflight[userID] = struct{}{}
	return true
}

func (u *triageUsecase) endScan(userID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.inflight, userID)
}

func (u *triageUsecase) Scan(ctx context.Context, userID string) (*triagedomain.ScanReport, error) {
	// Overlapping scans for one user would duplicate drafts and log
	// entries, so only one runs at a time.
	if !u.beginScan(userID) {
		return nil, ErrScanInProgress
	}
	defer u.endScan(userID)

	account, err := u.userRepo.FindByUID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.IsConfigured() {
		return nil, ErrNotConfigured
	}

	onTokenRefresh := func(t *oauth2.Token) error {
		return u.userRepo.UpdateRefreshToken(ctx, userID, t.RefreshToken)
	}

	listCtx, cancelList := context.WithTimeout(ctx, u.callTimeout)
	defer cancelList()
	candidates, err := u.gateway.ListUnreadCandidates(listCtx, account.RefreshToken, account.LookbackDays, onTokenRefresh)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate threads: %w", err)
	}

	report := &triagedomain.ScanReport{Candidates: len(candidates)}

	for _, candidate := range candidates {
		draft, err := u.draftReply(ctx, account.Manifesto, candidate.Snippet)
		if err != nil {
			// Drafting-engine failure is an external-dependency failure,
			// not a per-candidate soft fail; it aborts the scan.
			return report, fmt.Errorf("failed to draft reply for %q: %w", candidate.Subject, err)
		}

		ok := u.createDraft(ctx, account.RefreshToken, candidate.ID, draft, onTokenRefresh)

		action := triagedomain.ActionDraftCreated
		if ok {
			report.Drafted++
		} else {
			report.Failed++
			action = triagedomain.ActionDraftFailed
		}

		entry := &triagedomain.ActivityLogEntry{
			Subject:   candidate.Subject,
			Recipient: triagedomain.RecipientInbound,
			Action:    action,
		}
		if err := u.logRepo.Append(ctx, userID, entry); err != nil {
			return report, fmt.Errorf("failed to append activity log: %w", err)
		}
	}

	log.Printf("[DEBUG] Scan for user %s: %d candidates, %d drafted, %d failed", userID, report.Candidates, report.Drafted, report.Failed)
	return report, nil
}

func (u *triageUsecase) draftReply(ctx context.Context, manifesto, content string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, u.callTimeout)
	defer cancel()
	return u.engine.DraftReply(cctx, manifesto, content)
}

func (u *triageUsecase) createDraft(ctx context.Context, refreshToken, threadID, body string, onTokenRefresh triagedomain.TokenUpdateFunc) bool {
	cctx, cancel := context.WithTimeout(ctx, u.callTimeout)
	defer cancel()
	return u.gateway.CreateReplyDraft(cctx, refreshToken, threadID, body, onTokenRefresh)
}

func (u *triageUsecase) Chat(ctx context.Context, userID, query string) (string, error) {
	entries, err := u.logRepo.Recent(ctx, userID, chatContextLimit)
	if err != nil {
		return "", err
	}

	cctx, cancel := context.WithTimeout(ctx, u.callTimeout)
	defer cancel()
	return u.engine.ChatReply(cctx, query, entries)
}

func (u *triageUsecase) ActivitySummary(ctx context.Context, userID string) (string, error) {
	entries, err := u.logRepo.Recent(ctx, userID, chatContextLimit)
	if err != nil {
		return "", err
	}

	cctx, cancel := context.WithTimeout(ctx, u.callTimeout)
	defer cancel()
	return u.engine.SummarizeActivity(cctx, entries)
}

func (u *triageUsecase) RecentActivity(ctx context.Context, userID string, limit int) ([]*triagedomain.ActivityLogEntry, error) {
	return u.logRepo.Recent(ctx, userID, limit)
}
