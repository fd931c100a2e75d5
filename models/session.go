package models

import "time"

// Session is a snapshot of the persisted credentials the access layer reads
// before every authenticated call.
type Session struct {
	// Token is the bearer token written by the login flow.
	Token string `json:"-"`

	// Username is the active user written by the login or registration flow.
	Username string `json:"username"`

	// ExpiresAt is taken from the token's "exp" claim. Zero when the token is
	// absent or is not a JWT.
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// LoggedIn reports whether a token is stored.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}

// Expired reports whether the token has a known expiry that is before now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
