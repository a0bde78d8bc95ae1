package domain

import (
	"time"

	"golang.org/x/oauth2"
)

// CandidateThread is an unread, non-automated inbox thread pending triage.
// Constructed fresh per scan, never persisted.
type CandidateThread struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Snippet string `json:"snippet"`
}

// ActivityLogEntry is one durable record of a triage action, stored in the
// user's logs subcollection. Append-only; never updated or deleted.
type ActivityLogEntry struct {
	Subject   string    `firestore:"subject" json:"subject"`
	Recipient string    `firestore:"recipient" json:"recipient"`
	Action    string    `firestore:"action" json:"action"`
	Timestamp time.Time `firestore:"timestamp" json:"timestamp"`
}

// Actions recorded by the triage pipeline. One entry is appended per
// processed candidate; the action distinguishes draft-creation outcome.
const (
	ActionDraftCreated = "AI Draft Created"
	ActionDraftFailed  = "AI Draft Failed"

	RecipientInbound = "Inbound Email"
)

// ScanReport summarizes a single triage run.
type ScanReport struct {
	Candidates int `json:"candidates"`
	Drafted    int `json:"drafted"`
	Failed     int `json:"failed"`
}

// TokenUpdateFunc is a callback that persists a rotated OAuth token.
type TokenUpdateFunc func(*oauth2.Token) error
