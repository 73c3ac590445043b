package db

import "context"

type Querier interface {
	CreateSet(ctx context.Context, arg CreateSetParams) (CardSet, error)
	GetSetByCode(ctx context.Context, code string) (CardSet, error)
	ListSets(ctx context.Context, arg ListSetsParams) ([]CardSet, error)
	DeleteSetByCode(ctx context.Context, code string) error
	CreateCard(ctx context.Context, arg CreateCardParams) (Card, error)
	GetCard(ctx context.Context, id int64) (Card, error)
	ListCardsBySet(ctx context.Context, setID int64) ([]Card, error)
	CountCardsBySet(ctx context.Context, setID int64) (int64, error)
}

var _ Querier = (*Queries)(nil)
