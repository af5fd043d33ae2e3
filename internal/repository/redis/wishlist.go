package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/domain"
)

const wishlistKeyPrefix = "wishlist:"

// WishlistRepository implements repository.WishlistRepository using Redis.
// Wishlists never expire.
type WishlistRepository struct {
	store store
}

// NewWishlistRepository creates a new Redis-backed wishlist repository.
func NewWishlistRepository(client *redis.Client, logger *slog.Logger) *WishlistRepository {
	return &WishlistRepository{
		store: store{client: client, logger: logger},
	}
}

// Get retrieves a wishlist by user ID.
func (r *WishlistRepository) Get(ctx context.Context, userID string) (*domain.Wishlist, error) {
	var wl domain.Wishlist
	if err := r.store.get(ctx, wishlistKeyPrefix+userID, "wishlist", userID, &wl); err != nil {
		return nil, err
	}
	wl.UserID = userID
	if wl.ProductIDs == nil {
		wl.ProductIDs = []string{}
	}
	return &wl, nil
}

// Save persists a wishlist.
func (r *WishlistRepository) Save(ctx context.Context, wishlist *domain.Wishlist) error {
	return r.store.set(ctx, wishlistKeyPrefix+wishlist.UserID, "wishlist", wishlist)
}

// Delete removes a wishlist from Redis by user ID.
func (r *WishlistRepository) Delete(ctx context.Context, userID string) error {
	return r.store.remove(ctx, wishlistKeyPrefix+userID, "wishlist")
}
