package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"

	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
)

// Carts are kept alive for a month past the last mutation.
const defaultCartTTL = 30 * 24 * time.Hour

type redisStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(userID string) string
}

// Store persists cart aggregates in Redis as JSON documents.
type Store struct {
	redis redisStore
	ttl   time.Duration
}

func NewStore(redis redisStore, ttl time.Duration) (*Store, error) {
	if redis == nil {
		return nil, fmt.Errorf("redis store is required")
	}
	if ttl <= 0 {
		ttl = defaultCartTTL
	}
	return &Store{redis: redis, ttl: ttl}, nil
}

// Load returns the user's cart, or an empty one when none is stored.
func (s *Store) Load(ctx context.Context, userID uuid.UUID) (*Cart, error) {
	raw, err := s.redis.Get(ctx, s.redis.CartKey(userID.String()))
	if errors.Is(err, redislib.Nil) {
		return &Cart{}, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode cart")
	}
	return &cart, nil
}

// Save writes the cart back, refreshing its TTL.
func (s *Store) Save(ctx context.Context, userID uuid.UUID, cart *Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	encoded, err := json.Marshal(cart)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	if err := s.redis.Set(ctx, s.redis.CartKey(userID.String()), string(encoded), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return nil
}

// Clear deletes the stored cart.
func (s *Store) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.redis.Del(ctx, s.redis.CartKey(userID.String())); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}
