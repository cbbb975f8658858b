package models

// Identity is a login principal. The service ships with a single demo
// identity; the password is stored and compared in plaintext, which is the
// documented contract of this service, not an oversight. A real credential
// store can replace the lookup without touching the handlers.
type Identity struct {
	ID       int64
	Username string
	Password string
}
