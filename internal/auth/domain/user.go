package domain

import "time"

// UserAccount is the per-user document stored in the users collection.
// The refresh token is a secret: it is never rendered, never logged and
// excluded from JSON serialization.
type UserAccount struct {
	UID          string    `firestore:"uid" json:"uid"`
	Email        string    `firestore:"email" json:"email"`
	Name         string    `firestore:"name" json:"name"`
	RefreshToken string    `firestore:"refresh_token" json:"-"`
	Manifesto    string    `firestore:"manifesto" json:"manifesto"`
	LookbackDays int       `firestore:"lookback_duration" json:"lookback_duration"`
	LastLogin    time.Time `firestore:"last_login" json:"last_login"`
}

// IsConfigured reports whether the user finished setup.
func (u *UserAccount) IsConfigured() bool {
	return u.Manifesto != ""
}
