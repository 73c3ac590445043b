package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createSet = `
INSERT INTO card_sets (code, name, import_id)
VALUES ($1, $2, $3)
RETURNING id, code, name, import_id, created_at
`

type CreateSetParams struct {
	Code     string      `json:"code"`
	Name     string      `json:"name"`
	ImportID pgtype.UUID `json:"import_id"`
}

func (q *Queries) CreateSet(ctx context.Context, arg CreateSetParams) (CardSet, error) {
	row := q.db.QueryRow(ctx, createSet, arg.Code, arg.Name, arg.ImportID)
	var s CardSet
	err := row.Scan(&s.ID, &s.Code, &s.Name, &s.ImportID, &s.CreatedAt)
	return s, err
}

const getSetByCode = `
SELECT id, code, name, import_id, created_at
FROM card_sets
WHERE code = $1
`

func (q *Queries) GetSetByCode(ctx context.Context, code string) (CardSet, error) {
	row := q.db.QueryRow(ctx, getSetByCode, code)
	var s CardSet
	err := row.Scan(&s.ID, &s.Code, &s.Name, &s.ImportID, &s.CreatedAt)
	return s, err
}

const listSets = `
SELECT id, code, name, import_id, created_at
FROM card_sets
ORDER BY code
LIMIT $1 OFFSET $2
`

type ListSetsParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListSets(ctx context.Context, arg ListSetsParams) ([]CardSet, error) {
	rows, err := q.db.Query(ctx, listSets, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sets := []CardSet{}
	for rows.Next() {
		var s CardSet
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.ImportID, &s.CreatedAt); err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}

	return sets, rows.Err()
}

const deleteSetByCode = `
DELETE FROM card_sets
WHERE code = $1
`

// DeleteSetByCode removes a set and, through the cascade, all of its cards.
// Deleting an absent code is not an error.
func (q *Queries) DeleteSetByCode(ctx context.Context, code string) error {
	_, err := q.db.Exec(ctx, deleteSetByCode, code)
	return err
}
