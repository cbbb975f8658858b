package models

import "time"

// Claim is the decoded payload of a bearer token. It is never persisted;
// validity is determined entirely by the signature and the expiry.
type Claim struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
