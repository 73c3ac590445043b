package db

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// CardSet is one imported card set. ImportID identifies the import batch
// that last wrote it.
type CardSet struct {
	ID        int64       `json:"id"`
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	ImportID  pgtype.UUID `json:"import_id"`
	CreatedAt time.Time   `json:"created_at"`
}

// Card is one card row. Abilities is the card's ability list as JSON;
// RulesText is null for cards without rules text.
type Card struct {
	ID        int64       `json:"id"`
	SetID     int64       `json:"set_id"`
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	CardType  string      `json:"card_type"`
	Cost      int32       `json:"cost"`
	RulesText pgtype.Text `json:"rules_text"`
	Keywords  []string    `json:"keywords"`
	Abilities []byte      `json:"abilities"`
	CreatedAt time.Time   `json:"created_at"`
}
