package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"
	"github.com/tmulu/card-services/internal/cardsvc/models"
)

type gameRequest struct {
	GameTitle   string `json:"game_title"`
	Description string `json:"description"`
}

func (h *Handler) ListGamesHandler(w http.ResponseWriter, r *http.Request) {
	games, err := h.games.ListGames(r.Context())
	if err != nil {
		log.Errorf("failed to list games: %v", err)
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Server error"})
		return
	}

	respondJSON(w, http.StatusOK, games)
}

func (h *Handler) AddGameHandler(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if _, err := h.games.CreateGame(r.Context(), models.Game{GameTitle: req.GameTitle, Description: req.Description}); err != nil {
		log.Errorf("failed to add game: %v", err)
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Server error"})
		return
	}

	respondJSON(w, h.GameStatuses.Create, messageResponse{
		Message: fmt.Sprintf("Game %s added successfully", req.GameTitle),
	})
}

func (h *Handler) UpdateGameHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid game id"})
		return
	}

	var req gameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	affected, err := h.games.UpdateGame(r.Context(), id, models.Game{GameTitle: req.GameTitle, Description: req.Description})
	if err != nil {
		log.Errorf("failed to update game %d: %v", id, err)
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Update failed"})
		return
	}

	log.Infof("game %d updated, %d row(s) affected", id, affected)
	respondJSON(w, h.GameStatuses.Update, messageResponse{Message: "Game updated successfully!"})
}

func (h *Handler) DeleteGameHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid game id"})
		return
	}

	affected, err := h.games.DeleteGame(r.Context(), id)
	if err != nil {
		log.Errorf("failed to delete game %d: %v", id, err)
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Delete failed"})
		return
	}

	log.Infof("game %d deleted, %d row(s) affected", id, affected)
	respondJSON(w, h.GameStatuses.Delete, messageResponse{Message: "Game deleted successfully!"})
}
