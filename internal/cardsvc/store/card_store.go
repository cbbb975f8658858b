package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tmulu/card-services/internal/cardsvc/models"
)

// CardStore runs exactly one parameterized statement per call against the
// cards table. Connection acquisition and release is handled by the pool.
type CardStore struct {
	db *pgxpool.Pool
}

func NewCardStore(db *pgxpool.Pool) *CardStore {
	return &CardStore{db: db}
}

// ListCards returns every card in store order. No ORDER BY is applied, so
// callers must not rely on the ordering.
func (s *CardStore) ListCards(ctx context.Context) ([]models.Card, error) {
	query := `
		SELECT id, card_name, card_pic
		FROM cards
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	cards := make([]models.Card, 0)
	for rows.Next() {
		var c models.Card
		if err := rows.Scan(&c.ID, &c.CardName, &c.CardPic); err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		cards = append(cards, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read card rows: %w", err)
	}

	return cards, nil
}

// CreateCard inserts a card and returns the id assigned by the store.
func (s *CardStore) CreateCard(ctx context.Context, card models.Card) (int64, error) {
	query := `
		INSERT INTO cards (card_name, card_pic)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRow(ctx, query, card.CardName, card.CardPic).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert card: %w", err)
	}

	return id, nil
}

// UpdateCard updates a card by id and returns the number of rows affected.
// A missing id is not an error; it reports zero rows affected.
func (s *CardStore) UpdateCard(ctx context.Context, id int64, card models.Card) (int64, error) {
	query := `
		UPDATE cards
		SET card_name = $1, card_pic = $2
		WHERE id = $3
	`

	tag, err := s.db.Exec(ctx, query, card.CardName, card.CardPic, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update card: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeleteCard deletes a card by id, with the same zero-match policy as
// UpdateCard.
func (s *CardStore) DeleteCard(ctx context.Context, id int64) (int64, error) {
	query := `
		DELETE FROM cards
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete card: %w", err)
	}

	return tag.RowsAffected(), nil
}
