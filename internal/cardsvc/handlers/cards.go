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

type cardRequest struct {
	CardName string `json:"card_name"`
	CardPic  string `json:"card_pic"`
}

// ListCardsHandler returns every card. Store failures are logged in full
// and answered with a static message only.
func (h *Handler) ListCardsHandler(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cards.ListCards(r.Context())
	if err != nil {
		log.Errorf("failed to list cards: %v", err)
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Server error"})
		return
	}

	respondJSON(w, http.StatusOK, cards)
}

func (h *Handler) AddCardHandler(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	// field content is not validated, empty strings included
	if _, err := h.cards.CreateCard(r.Context(), models.Card{CardName: req.CardName, CardPic: req.CardPic}); err != nil {
		log.Errorf("failed to add card: %v", err)
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Server error"})
		return
	}

	respondJSON(w, h.CardStatuses.Create, messageResponse{
		Message: fmt.Sprintf("Card %s added successfully", req.CardName),
	})
}

func (h *Handler) UpdateCardHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid card id"})
		return
	}

	var req cardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	// zero rows affected is still a success, not a 404
	affected, err := h.cards.UpdateCard(r.Context(), id, models.Card{CardName: req.CardName, CardPic: req.CardPic})
	if err != nil {
		log.Errorf("failed to update card %d: %v", id, err)
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Update failed"})
		return
	}

	log.Infof("card %d updated, %d row(s) affected", id, affected)
	respondJSON(w, h.CardStatuses.Update, messageResponse{Message: "Card updated successfully!"})
}

func (h *Handler) DeleteCardHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid card id"})
		return
	}

	affected, err := h.cards.DeleteCard(r.Context(), id)
	if err != nil {
		log.Errorf("failed to delete card %d: %v", id, err)
		respondJSON(w, http.StatusInternalServerError, messageResponse{Message: "Delete failed"})
		return
	}

	log.Infof("card %d deleted, %d row(s) affected", id, affected)
	respondJSON(w, h.CardStatuses.Delete, messageResponse{Message: "Card deleted successfully!"})
}
