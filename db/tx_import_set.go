package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ag-eitilt/Pocket-Binder/carddef"
	"github.com/ag-eitilt/Pocket-Binder/util"
)

type ImportSetTxParams struct {
	Set      carddef.Set `json:"set"`
	ImportID uuid.UUID   `json:"import_id"`
}

type ImportSetTxResult struct {
	Set   CardSet `json:"set"`
	Cards []Card  `json:"cards"`
}

// ImportSetTx writes one reduced set and all of its cards atomically.
// An existing set with the same code is replaced wholesale, cards included,
// so re-importing a definitions file is idempotent per set code. Cards are
// inserted in document order.
func (s *SQLStore) ImportSetTx(ctx context.Context, arg ImportSetTxParams) (ImportSetTxResult, error) {
	var result ImportSetTxResult

	err := s.execTx(ctx, func(q *Queries) error {
		// 1. Drop the previous version of the set, if any. The cascade takes
		// its cards with it.
		if err := q.DeleteSetByCode(ctx, arg.Set.Code); err != nil {
			return err
		}

		// 2. Recreate the set under the new import batch.
		set, err := q.CreateSet(ctx, CreateSetParams{
			Code:     arg.Set.Code,
			Name:     arg.Set.Name,
			ImportID: pgtype.UUID{Bytes: arg.ImportID, Valid: true},
		})
		if err != nil {
			return err
		}

		result.Set = set
		result.Cards = make([]Card, 0, len(arg.Set.Cards))

		// 3. Insert the cards in document order.
		for _, c := range arg.Set.Cards {
			var abilities []byte
			if len(c.Abilities) > 0 {
				abilities, err = json.Marshal(c.Abilities)
				if err != nil {
					return fmt.Errorf("card %q: serializing abilities: %w", c.Code, err)
				}
			}

			card, err := q.CreateCard(ctx, CreateCardParams{
				SetID:     set.ID,
				Code:      c.Code,
				Name:      c.Name,
				CardType:  c.Type,
				Cost:      c.Cost,
				RulesText: util.TextToPgx(c.Text),
				Keywords:  c.Keywords,
				Abilities: abilities,
			})

			// two cards with the same code in one document hit the
			// (set_id, code) unique constraint
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == UniqueViolation {
				return fmt.Errorf("card %q: %w", c.Code, ErrDuplicateCardCode)
			}

			if err != nil {
				return err
			}

			result.Cards = append(result.Cards, card)
		}

		return nil
	})

	return result, err
}
