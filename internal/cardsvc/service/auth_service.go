package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth"
	"github.com/tmulu/card-services/internal/cardsvc/models"
)

// IdentityLookup resolves a username to an identity. Lookup returns
// (nil, nil) when no identity matches.
type IdentityLookup interface {
	Lookup(ctx context.Context, username string) (*models.Identity, error)
}

// AuthService issues and verifies HS256 bearer tokens. Verification is a
// pure function of the token, the secret and the clock; no session state
// is kept anywhere.
type AuthService struct {
	tokenAuth  *jwtauth.JWTAuth
	identities IdentityLookup
	tokenTTL   time.Duration
	now        func() time.Time
}

func NewAuthService(secret string, identities IdentityLookup, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		tokenAuth:  jwtauth.New("HS256", []byte(secret), nil),
		identities: identities,
		tokenTTL:   tokenTTL,
		now:        time.Now,
	}
}

// Login checks the credentials against the identity lookup and returns a
// signed token carrying the identity claims. The stored password is
// plaintext; the comparison is still constant time.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	identity, err := s.identities.Lookup(ctx, username)
	if err != nil {
		return "", fmt.Errorf("identity lookup failed: %w", err)
	}
	if identity == nil {
		return "", ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(identity.Password), []byte(password)) != 1 {
		return "", ErrInvalidCredentials
	}

	now := s.now()
	_, tokenString, err := s.tokenAuth.Encode(map[string]interface{}{
		"user_id":  identity.ID,
		"username": identity.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify checks the token signature and expiry and returns the embedded
// claim. An expired token is reported distinctly from a signature failure.
func (s *AuthService) Verify(tokenString string) (*models.Claim, error) {
	token, err := jwtauth.VerifyToken(s.tokenAuth, tokenString)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrBadSignature
	}

	claim := &models.Claim{
		IssuedAt:  token.IssuedAt(),
		ExpiresAt: token.Expiration(),
	}
	if v, ok := token.Get("username"); ok {
		claim.Username, _ = v.(string)
	}
	if v, ok := token.Get("user_id"); ok {
		// private claims decode as float64 from JSON
		switch n := v.(type) {
		case float64:
			claim.UserID = int64(n)
		case int64:
			claim.UserID = n
		}
	}

	return claim, nil
}
