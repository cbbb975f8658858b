package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/tmulu/card-services/internal/cardsvc/models"
	"github.com/tmulu/card-services/internal/cardsvc/service"
)

func newGameRouter(games *fakeGameService, cfg RouteConfig) *chi.Mux {
	h := NewHandler(&fakeAuthService{verifyErr: service.ErrBadSignature}, &fakeCardService{}, games)
	return newTestRouter(h, cfg)
}

func TestListGamesHandler(t *testing.T) {
	games := &fakeGameService{games: []models.Game{
		{ID: 1, GameTitle: "Chess", Description: "Two player strategy"},
	}}
	r := newGameRouter(games, RouteConfig{})

	rr := doRequest(t, r, http.MethodGet, "/allgames", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"game_title":"Chess","description":"Two player strategy"}]`, rr.Body.String())
}

func TestAddGameHandler(t *testing.T) {
	games := &fakeGameService{nextID: 2}
	r := newGameRouter(games, RouteConfig{})

	rr := doRequest(t, r, http.MethodPost, "/addgame",
		`{"game_title":"Checkers","description":"Classic"}`, "")

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"message":"Game Checkers added successfully"}`, rr.Body.String())
	assert.Equal(t, "Checkers", games.lastGame.GameTitle)
}

func TestUpdateGameHandlerUsesGamePolicy(t *testing.T) {
	games := &fakeGameService{affected: 1}
	r := newGameRouter(games, RouteConfig{})

	rr := doRequest(t, r, http.MethodPut, "/updategame/3",
		`{"game_title":"Checkers","description":"Updated"}`, "")

	// game routes answer 200 on update, unlike cards
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Game updated successfully!"}`, rr.Body.String())
	assert.Equal(t, int64(3), games.lastID)
}

func TestUpdateGameHandlerMissingRowIsSuccess(t *testing.T) {
	games := &fakeGameService{affected: 0}
	r := newGameRouter(games, RouteConfig{})

	rr := doRequest(t, r, http.MethodPut, "/updategame/404",
		`{"game_title":"Nothing","description":""}`, "")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteGameHandler(t *testing.T) {
	games := &fakeGameService{affected: 1}
	r := newGameRouter(games, RouteConfig{})

	rr := doRequest(t, r, http.MethodDelete, "/deletegame/3", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Game deleted successfully!"}`, rr.Body.String())
}

func TestGameMutationsOpenByDefault(t *testing.T) {
	// the games deployment historically ran without auth; the flag keeps
	// that behavior while the same router can also gate it
	games := &fakeGameService{nextID: 9}
	r := newGameRouter(games, RouteConfig{AuthGames: false})

	rr := doRequest(t, r, http.MethodPost, "/addgame",
		`{"game_title":"Go","description":"Territory"}`, "")

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 1, games.calls)
}

func TestGameMutationsCanBeGated(t *testing.T) {
	games := &fakeGameService{nextID: 9}
	r := newGameRouter(games, RouteConfig{AuthGames: true})

	rr := doRequest(t, r, http.MethodPost, "/addgame",
		`{"game_title":"Go","description":"Territory"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, 0, games.calls)
}

func TestGameHandlerStoreError(t *testing.T) {
	r := newGameRouter(&fakeGameService{err: errors.New("relation does not exist")}, RouteConfig{})

	rr := doRequest(t, r, http.MethodGet, "/allgames", "", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"Server error"}`, rr.Body.String())
}
