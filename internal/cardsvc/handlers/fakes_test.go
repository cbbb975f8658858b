package handlers

import (
	"context"

	"github.com/tmulu/card-services/internal/cardsvc/models"
)

type fakeAuthService struct {
	token     string
	loginErr  error
	verifyErr error
	claim     *models.Claim
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeAuthService) Verify(tokenString string) (*models.Claim, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.claim, nil
}

type fakeCardService struct {
	cards    []models.Card
	err      error
	nextID   int64
	affected int64

	calls    int
	lastCard models.Card
	lastID   int64
}

func (f *fakeCardService) ListCards(ctx context.Context) ([]models.Card, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.cards, nil
}

func (f *fakeCardService) CreateCard(ctx context.Context, card models.Card) (int64, error) {
	f.calls++
	f.lastCard = card
	if f.err != nil {
		return 0, f.err
	}
	return f.nextID, nil
}

func (f *fakeCardService) UpdateCard(ctx context.Context, id int64, card models.Card) (int64, error) {
	f.calls++
	f.lastID = id
	f.lastCard = card
	if f.err != nil {
		return 0, f.err
	}
	return f.affected, nil
}

func (f *fakeCardService) DeleteCard(ctx context.Context, id int64) (int64, error) {
	f.calls++
	f.lastID = id
	if f.err != nil {
		return 0, f.err
	}
	return f.affected, nil
}

type fakeGameService struct {
	games    []models.Game
	err      error
	nextID   int64
	affected int64

	calls    int
	lastGame models.Game
	lastID   int64
}

func (f *fakeGameService) ListGames(ctx context.Context) ([]models.Game, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.games, nil
}

func (f *fakeGameService) CreateGame(ctx context.Context, game models.Game) (int64, error) {
	f.calls++
	f.lastGame = game
	if f.err != nil {
		return 0, f.err
	}
	return f.nextID, nil
}

func (f *fakeGameService) UpdateGame(ctx context.Context, id int64, game models.Game) (int64, error) {
	f.calls++
	f.lastID = id
	f.lastGame = game
	if f.err != nil {
		return 0, f.err
	}
	return f.affected, nil
}

func (f *fakeGameService) DeleteGame(ctx context.Context, id int64) (int64, error) {
	f.calls++
	f.lastID = id
	if f.err != nil {
		return 0, f.err
	}
	return f.affected, nil
}
