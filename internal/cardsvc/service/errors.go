package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password; callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrBadSignature means the token signature did not verify against
	// the configured secret.
	ErrBadSignature = errors.New("invalid token signature")

	// ErrTokenExpired means the signature verified but the expiry claim
	// has passed.
	ErrTokenExpired = errors.New("token expired")
)
