package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tmulu/card-services/internal/cardsvc/models"
)

// AuthService issues tokens for valid credentials and verifies presented
// tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Verify(tokenString string) (*models.Claim, error)
}

// CardService is the card accessor as seen by the handlers.
type CardService interface {
	ListCards(ctx context.Context) ([]models.Card, error)
	CreateCard(ctx context.Context, card models.Card) (int64, error)
	UpdateCard(ctx context.Context, id int64, card models.Card) (int64, error)
	DeleteCard(ctx context.Context, id int64) (int64, error)
}

// GameService is the game accessor as seen by the handlers.
type GameService interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	CreateGame(ctx context.Context, game models.Game) (int64, error)
	UpdateGame(ctx context.Context, id int64, game models.Game) (int64, error)
	DeleteGame(ctx context.Context, id int64) (int64, error)
}

// StatusPolicy fixes the success status per mutation. The card routes
// historically answered 201 on update and delete as well as create; that
// inconsistency is kept as policy instead of being unified.
type StatusPolicy struct {
	Create int
	Update int
	Delete int
}

type Handler struct {
	auth  AuthService
	cards CardService
	games GameService

	// CardStatuses and GameStatuses may be overridden before SetRoutes.
	CardStatuses StatusPolicy
	GameStatuses StatusPolicy
}

func NewHandler(auth AuthService, cards CardService, games GameService) *Handler {
	return &Handler{
		auth:  auth,
		cards: cards,
		games: games,
		CardStatuses: StatusPolicy{
			Create: http.StatusCreated,
			Update: http.StatusCreated,
			Delete: http.StatusCreated,
		},
		GameStatuses: StatusPolicy{
			Create: http.StatusCreated,
			Update: http.StatusOK,
			Delete: http.StatusOK,
		},
	}
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	json.NewEncoder(w).Encode(v)
}

// RootHandler is a plain liveness line for anyone poking at the base URL.
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Server is running! Try /allcards to see the data."))
}
