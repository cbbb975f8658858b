package service

import (
	"context"

	"github.com/tmulu/card-services/internal/cardsvc/models"
	"github.com/tmulu/card-services/internal/cardsvc/store"
)

type CardService struct {
	store *store.CardStore
}

func NewCardService(store *store.CardStore) *CardService {
	return &CardService{store: store}
}

func (s *CardService) ListCards(ctx context.Context) ([]models.Card, error) {
	return s.store.ListCards(ctx)
}

func (s *CardService) CreateCard(ctx context.Context, card models.Card) (int64, error) {
	return s.store.CreateCard(ctx, card)
}

func (s *CardService) UpdateCard(ctx context.Context, id int64, card models.Card) (int64, error) {
	return s.store.UpdateCard(ctx, id, card)
}

func (s *CardService) DeleteCard(ctx context.Context, id int64) (int64, error) {
	return s.store.DeleteCard(ctx, id)
}
