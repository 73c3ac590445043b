package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/ag-eitilt/Pocket-Binder/carddef"
	"github.com/ag-eitilt/Pocket-Binder/util"
)

func createTestSet(t *testing.T) CardSet {
	t.Helper()

	arg := CreateSetParams{
		Code:     util.RandomCode(),
		Name:     util.RandomString(16),
		ImportID: pgtype.UUID{Bytes: uuid.New(), Valid: true},
	}

	set, err := testStore.CreateSet(context.Background(), arg)
	require.NoError(t, err)
	require.NotZero(t, set.ID)
	require.Equal(t, arg.Code, set.Code)
	require.Equal(t, arg.Name, set.Name)

	t.Cleanup(func() {
		_ = testStore.DeleteSetByCode(context.Background(), set.Code)
	})

	return set
}

func createTestCard(t *testing.T, setID int64) Card {
	t.Helper()

	arg := CreateCardParams{
		SetID:    setID,
		Code:     util.RandomCode(),
		Name:     util.RandomString(16),
		CardType: "creature",
		Cost:     int32(util.RandomInt(0, 9)),
		Keywords: []string{"haste"},
	}

	card, err := testStore.CreateCard(context.Background(), arg)
	require.NoError(t, err)
	require.NotZero(t, card.ID)
	require.Equal(t, arg.Code, card.Code)

	return card
}

func testDefSet(nCards int) carddef.Set {
	set := carddef.Set{
		Code: util.RandomCode(),
		Name: util.RandomString(16),
	}

	for i := 0; i < nCards; i++ {
		set.Cards = append(set.Cards, carddef.Card{
			Code:     util.RandomCode(),
			Name:     util.RandomString(12),
			Type:     "creature",
			Cost:     int32(i),
			Text:     "some rules text",
			Keywords: []string{"haste", "rush"},
			Abilities: []carddef.Ability{
				{Trigger: "cast", Effect: "damage", Amount: int32(i)},
			},
		})
	}

	return set
}
