package tmpstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	db "github.com/ag-eitilt/Pocket-Binder/db"
	"github.com/ag-eitilt/Pocket-Binder/util"
)

// Different key prefixes for different use cases
const (
	CardPrefix = "card:"
)

// ErrCacheMiss is returned when the key is absent or already expired.
var ErrCacheMiss = fmt.Errorf("cache miss")

type Store interface {
	SaveCard(ctx context.Context, card db.Card, ttl time.Duration) error
	GetCard(ctx context.Context, id int64) (*db.Card, error)
	DeleteCard(ctx context.Context, id int64) error
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

func cardKey(id int64) string {
	return CardPrefix + strconv.FormatInt(id, 10)
}

// SaveCard caches one card row for ttl.
func (store *RedisStore) SaveCard(ctx context.Context, card db.Card, ttl time.Duration) error {
	jsonData, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("failed to serialize card: %w", err)
	}

	return store.client.Set(ctx, cardKey(card.ID), jsonData, ttl).Err()
}

// GetCard retrieves a cached card. Returns ErrCacheMiss when it is absent or
// expired.
func (store *RedisStore) GetCard(ctx context.Context, id int64) (*db.Card, error) {
	jsonData, err := store.client.Get(ctx, cardKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cached card: %w", err)
	}

	var card db.Card
	if err := json.Unmarshal([]byte(jsonData), &card); err != nil {
		return nil, fmt.Errorf("failed to parse cached card json: %w", err)
	}

	return &card, nil
}

// DeleteCard drops a card from the cache.
func (store *RedisStore) DeleteCard(ctx context.Context, id int64) error {
	return store.client.Del(ctx, cardKey(id)).Err()
}
