package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/tmulu/card-services/internal/cardsvc/models"
	"github.com/tmulu/card-services/internal/cardsvc/service"
)

type contextKey string

const claimContextKey contextKey = "claim"

// ClaimFromContext returns the claim attached by RequireAuth, or nil on
// routes that did not pass through it.
func ClaimFromContext(ctx context.Context) *models.Claim {
	claim, _ := ctx.Value(claimContextKey).(*models.Claim)
	return claim
}

// RequireAuth rejects the request before dispatch unless it carries a
// valid "Bearer <token>" Authorization header. The three failure modes
// (missing header, bad format, bad token) get distinct responses; the
// precise token failure (signature vs expiry) is only logged.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "Missing Authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) < 2 || parts[0] != "Bearer" || parts[1] == "" {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid Authorization format"})
			return
		}

		claim, err := h.auth.Verify(parts[1])
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				log.Infof("auth rejected: expired token for %s %s", r.Method, r.URL.Path)
			case errors.Is(err, service.ErrBadSignature):
				log.Infof("auth rejected: bad token signature for %s %s", r.Method, r.URL.Path)
			default:
				log.Errorf("auth rejected: %v", err)
			}
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid/Expired token"})
			return
		}

		ctx := context.WithValue(r.Context(), claimContextKey, claim)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
