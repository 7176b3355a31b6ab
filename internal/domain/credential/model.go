package credential

import "time"

// Entry is the server-side record of an issued credential, keyed in the
// store by the token's SHA-256 digest. The raw token is never persisted.
type Entry struct {
	Subject   string    `json:"subject"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Credential is the issuance result handed back to the caller. The raw token
// appears here once and is otherwise never logged or stored.
type Credential struct {
	Token     string    `json:"token"`
	Subject   string    `json:"subject"`
	ExpiresAt time.Time `json:"expires_at"`
}
