package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ag-eitilt/Pocket-Binder/util"
)

func TestCreateCard(t *testing.T) {
	set := createTestSet(t)
	card := createTestCard(t, set.ID)

	require.Equal(t, set.ID, card.SetID)
	require.False(t, card.RulesText.Valid)
	require.Equal(t, []string{"haste"}, card.Keywords)
}

func TestGetCard(t *testing.T) {
	set := createTestSet(t)
	created := createTestCard(t, set.ID)

	got, err := testStore.GetCard(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestCreateCard_RulesText(t *testing.T) {
	set := createTestSet(t)

	card, err := testStore.CreateCard(context.Background(), CreateCardParams{
		SetID:     set.ID,
		Code:      util.RandomCode(),
		Name:      util.RandomString(12),
		RulesText: util.TextToPgx("Attacks each turn if able."),
	})
	require.NoError(t, err)
	require.True(t, card.RulesText.Valid)
	require.Equal(t, "Attacks each turn if able.", card.RulesText.String)
}

func TestListCardsBySet(t *testing.T) {
	set := createTestSet(t)

	want := make([]int64, 0, 5)
	for range 5 {
		card := createTestCard(t, set.ID)
		want = append(want, card.ID)
	}

	cards, err := testStore.ListCardsBySet(context.Background(), set.ID)
	require.NoError(t, err)
	require.Len(t, cards, 5)

	// insertion order is preserved
	for i, card := range cards {
		require.Equal(t, want[i], card.ID)
	}
}

func TestCountCardsBySet(t *testing.T) {
	set := createTestSet(t)
	for range 4 {
		createTestCard(t, set.ID)
	}

	count, err := testStore.CountCardsBySet(context.Background(), set.ID)
	require.NoError(t, err)
	require.EqualValues(t, 4, count)
}
