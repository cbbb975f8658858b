package service

import (
	"context"

	"github.com/tmulu/card-services/internal/cardsvc/models"
	"github.com/tmulu/card-services/internal/cardsvc/store"
)

type GameService struct {
	store *store.GameStore
}

func NewGameService(store *store.GameStore) *GameService {
	return &GameService{store: store}
}

func (s *GameService) ListGames(ctx context.Context) ([]models.Game, error) {
	return s.store.ListGames(ctx)
}

func (s *GameService) CreateGame(ctx context.Context, game models.Game) (int64, error) {
	return s.store.CreateGame(ctx, game)
}

func (s *GameService) UpdateGame(ctx context.Context, id int64, game models.Game) (int64, error) {
	return s.store.UpdateGame(ctx, id, game)
}

func (s *GameService) DeleteGame(ctx context.Context, id int64) (int64, error) {
	return s.store.DeleteGame(ctx, id)
}
