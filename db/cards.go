package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createCard = `
INSERT INTO cards (set_id, code, name, card_type, cost, rules_text, keywords, abilities)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, set_id, code, name, card_type, cost, rules_text, keywords, abilities, created_at
`

type CreateCardParams struct {
	SetID     int64       `json:"set_id"`
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	CardType  string      `json:"card_type"`
	Cost      int32       `json:"cost"`
	RulesText pgtype.Text `json:"rules_text"`
	Keywords  []string    `json:"keywords"`
	Abilities []byte      `json:"abilities"`
}

func (q *Queries) CreateCard(ctx context.Context, arg CreateCardParams) (Card, error) {
	row := q.db.QueryRow(ctx, createCard,
		arg.SetID,
		arg.Code,
		arg.Name,
		arg.CardType,
		arg.Cost,
		arg.RulesText,
		arg.Keywords,
		arg.Abilities,
	)

	var c Card
	err := row.Scan(
		&c.ID,
		&c.SetID,
		&c.Code,
		&c.Name,
		&c.CardType,
		&c.Cost,
		&c.RulesText,
		&c.Keywords,
		&c.Abilities,
		&c.CreatedAt,
	)
	return c, err
}

const getCard = `
SELECT id, set_id, code, name, card_type, cost, rules_text, keywords, abilities, created_at
FROM cards
WHERE id = $1
`

func (q *Queries) GetCard(ctx context.Context, id int64) (Card, error) {
	row := q.db.QueryRow(ctx, getCard, id)

	var c Card
	err := row.Scan(
		&c.ID,
		&c.SetID,
		&c.Code,
		&c.Name,
		&c.CardType,
		&c.Cost,
		&c.RulesText,
		&c.Keywords,
		&c.Abilities,
		&c.CreatedAt,
	)
	return c, err
}

const listCardsBySet = `
SELECT id, set_id, code, name, card_type, cost, rules_text, keywords, abilities, created_at
FROM cards
WHERE set_id = $1
ORDER BY id
`

// ListCardsBySet returns a set's cards in insertion order, which is the
// document order of the original import.
func (q *Queries) ListCardsBySet(ctx context.Context, setID int64) ([]Card, error) {
	rows, err := q.db.Query(ctx, listCardsBySet, setID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []Card{}
	for rows.Next() {
		var c Card
		err := rows.Scan(
			&c.ID,
			&c.SetID,
			&c.Code,
			&c.Name,
			&c.CardType,
			&c.Cost,
			&c.RulesText,
			&c.Keywords,
			&c.Abilities,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}

	return cards, rows.Err()
}

const countCardsBySet = `
SELECT count(*)
FROM cards
WHERE set_id = $1
`

func (q *Queries) CountCardsBySet(ctx context.Context, setID int64) (int64, error) {
	row := q.db.QueryRow(ctx, countCardsBySet, setID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
