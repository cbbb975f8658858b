package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/tmulu/card-services/internal/cardsvc/service"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler exchanges valid credentials for a signed token. Unknown
// username and wrong password answer identically.
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid credentials"})
			return
		}
		log.Errorf("login failed: %v", err)
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Server error"})
		return
	}

	respondJSON(w, http.StatusOK, tokenResponse{Token: token})
}
