// Package credentialres defines the HTTP response payloads for auth
// operations.
package credentialres

import "time"

// LoginResponse carries a freshly issued API credential. The raw token
// appears here once and is never returned again.
type LoginResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LogoutResponse reports whether the credential was active before revocation.
type LogoutResponse struct {
	Revoked bool `json:"revoked"`
}
