package models

// Game represents a row of the games table.
type Game struct {
	ID          int64  `json:"id"` // Primary key, assigned by the store
	GameTitle   string `json:"game_title"`
	Description string `json:"description"`
}
