package models

// Card represents a row of the cards table.
type Card struct {
	ID       int64  `json:"id"`        // Primary key, assigned by the store
	CardName string `json:"card_name"` // Display name
	CardPic  string `json:"card_pic"`  // Picture URI or reference
}
