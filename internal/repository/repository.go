package repository

import (
	"context"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/domain"
)

// CartRepository defines the interface for cart persistence operations.
// Carts expire; a cart older than the configured TTL is treated as absent.
type CartRepository interface {
	// Get retrieves a cart by user ID. Missing, expired, or unreadable
	// carts yield a not-found error so callers fall back to an empty cart.
	Get(ctx context.Context, userID string) (*domain.Cart, error)

	// Save persists a cart, overwriting any existing cart for the user and
	// restarting its expiry window. Last write wins; there is no conflict
	// detection across concurrent writers.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes a cart from the store by the user ID.
	Delete(ctx context.Context, userID string) error
}

// WishlistRepository defines the interface for wishlist persistence operations.
// Wishlists never expire.
type WishlistRepository interface {
	Get(ctx context.Context, userID string) (*domain.Wishlist, error)
	Save(ctx context.Context, wishlist *domain.Wishlist) error
	Delete(ctx context.Context, userID string) error
}

// ProfileRepository defines the interface for user profile persistence.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Save(ctx context.Context, profile *domain.Profile) error
}

// ProductRepository defines read access to the product catalog.
type ProductRepository interface {
	// List returns all products, newest first.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a product by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// GetBySlug retrieves a product by its URL-friendly slug.
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)

	// Search returns products whose name or description contains the query,
	// case-insensitively, preserving catalog order.
	Search(ctx context.Context, query string) ([]domain.Product, error)

	// ListCollections returns all collections sorted by display order, with
	// product counts populated.
	ListCollections(ctx context.Context) ([]domain.Collection, error)

	// GetCollectionBySlug retrieves a collection and its member products.
	GetCollectionBySlug(ctx context.Context, slug string) (*domain.Collection, []domain.Product, error)
}

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order scoped to the given user.
	GetByID(ctx context.Context, userID, orderID string) (*domain.Order, error)

	// List returns the user's orders, newest first.
	List(ctx context.Context, userID string) ([]domain.Order, error)
}
