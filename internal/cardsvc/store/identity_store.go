package store

import (
	"context"

	"github.com/tmulu/card-services/internal/cardsvc/models"
)

// IdentityStore holds the single demo identity. There is no registration
// path and no user table behind it; swapping in a database-backed lookup
// only requires satisfying service.IdentityLookup.
type IdentityStore struct {
	identity models.Identity
}

func NewIdentityStore(identity models.Identity) *IdentityStore {
	return &IdentityStore{identity: identity}
}

// Lookup returns the identity for a username, or nil when no identity
// matches. A nil result is not an error.
func (s *IdentityStore) Lookup(ctx context.Context, username string) (*models.Identity, error) {
	if username != s.identity.Username {
		return nil, nil
	}

	identity := s.identity
	return &identity, nil
}
