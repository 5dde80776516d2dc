package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"kioskopos/internal/cart"
)

// Abandoned carts expire on their own; 24h covers the longest shift.
const cartTTL = 24 * time.Hour

// CartStore keeps the per-operator in-progress cart. Carts are ephemeral
// working state, so they live in Redis rather than Postgres: a missing key
// simply means an empty cart.
type CartStore interface {
	Load(ctx context.Context, userID uuid.UUID) (*cart.Cart, error)
	Save(ctx context.Context, userID uuid.UUID, c *cart.Cart) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type redisCartStore struct{ rdb *redis.Client }

func NewCartStore(rdb *redis.Client) CartStore { return &redisCartStore{rdb: rdb} }

func cartKey(userID uuid.UUID) string { return fmt.Sprintf("cart:%s", userID) }

func (s *redisCartStore) Load(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	raw, err := s.rdb.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, err
	}
	var c cart.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		// Corrupted payload: start fresh rather than locking the operator out.
		return cart.New(), nil
	}
	return &c, nil
}

func (s *redisCartStore) Save(ctx context.Context, userID uuid.UUID, c *cart.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, cartKey(userID), raw, cartTTL).Err()
}

func (s *redisCartStore) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.rdb.Del(ctx, cartKey(userID)).Err()
}
