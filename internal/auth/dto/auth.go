package dto

// SetupRequest carries the manifesto form submission
type SetupRequest struct {
	Manifesto    string `form:"manifesto" binding:"required"`
	LookbackDays int    `form:"lookback_duration"`
}

// SessionClaims is the authenticated identity carried by the session cookie
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
