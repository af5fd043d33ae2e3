package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/domain"
)

const cartKeyPrefix = "cart:"

// CartRepository implements repository.CartRepository using Redis. Carts are
// written with a TTL and additionally checked against their write timestamp on
// read, so a cart restored from a backup past its window still reads as empty.
type CartRepository struct {
	store store
}

// NewCartRepository creates a new Redis-backed cart repository with the given TTL.
func NewCartRepository(client *redis.Client, logger *slog.Logger, ttl time.Duration) *CartRepository {
	return &CartRepository{
		store: store{client: client, logger: logger, maxAge: ttl},
	}
}

// Get retrieves a cart by user ID. Expired or unreadable carts are discarded
// and reported as not found.
func (r *CartRepository) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	var cart domain.Cart
	if err := r.store.get(ctx, cartKeyPrefix+userID, "cart", userID, &cart); err != nil {
		return nil, err
	}
	cart.UserID = userID
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return &cart, nil
}

// Save persists a cart, restarting its expiry window.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	return r.store.set(ctx, cartKeyPrefix+cart.UserID, "cart", cart)
}

// Delete removes a cart from Redis by user ID.
func (r *CartRepository) Delete(ctx context.Context, userID string) error {
	return r.store.remove(ctx, cartKeyPrefix+userID, "cart")
}
