package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tmulu/card-services/internal/cardsvc/models"
)

// GameStore mirrors CardStore over the games table.
type GameStore struct {
	db *pgxpool.Pool
}

func NewGameStore(db *pgxpool.Pool) *GameStore {
	return &GameStore{db: db}
}

func (s *GameStore) ListGames(ctx context.Context) ([]models.Game, error) {
	query := `
		SELECT id, game_title, description
		FROM games
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(&g.ID, &g.GameTitle, &g.Description); err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read game rows: %w", err)
	}

	return games, nil
}

func (s *GameStore) CreateGame(ctx context.Context, game models.Game) (int64, error) {
	query := `
		INSERT INTO games (game_title, description)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRow(ctx, query, game.GameTitle, game.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert game: %w", err)
	}

	return id, nil
}

func (s *GameStore) UpdateGame(ctx context.Context, id int64, game models.Game) (int64, error) {
	query := `
		UPDATE games
		SET game_title = $1, description = $2
		WHERE id = $3
	`

	tag, err := s.db.Exec(ctx, query, game.GameTitle, game.Description, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update game: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (s *GameStore) DeleteGame(ctx context.Context, id int64) (int64, error) {
	query := `
		DELETE FROM games
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete game: %w", err)
	}

	return tag.RowsAffected(), nil
}
