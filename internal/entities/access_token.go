package entities

import "time"

// AccessToken binds the hash of an opaque bearer token to a user.
// The plaintext token is only ever shown once, at login.
type AccessToken struct {
	ID         string     `json:"id"` // UUID
	UserID     string     `json:"user_id"`
	TokenHash  string     `json:"token_hash"` // hex SHA-256 of the plaintext
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"` // nil means never expires
}

// IsExpired reports whether the token has an expiry at or before now.
func (t *AccessToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}
