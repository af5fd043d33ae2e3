package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/domain"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/event"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/repository"
	apperrors "github.com/muhammadnaveedsaleem774/noorfab/pkg/errors"
)

// WishlistService implements the business logic for wishlist operations. The
// wishlist is a set of product ids; add and remove are both idempotent.
type WishlistService struct {
	repo     repository.WishlistRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(repo repository.WishlistRepository, producer *event.Producer, logger *slog.Logger) *WishlistService {
	return &WishlistService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// Get retrieves the wishlist for a user. A missing wishlist reads as empty.
func (s *WishlistService) Get(ctx context.Context, userID string) (*domain.Wishlist, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	wishlist, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return emptyWishlist(userID), nil
		}
		return nil, fmt.Errorf("get wishlist: %w", err)
	}

	return wishlist, nil
}

// Add inserts a product id into the wishlist. Adding an id that is already
// present is a no-op and does not rewrite the stored record.
func (s *WishlistService) Add(ctx context.Context, userID, productID string) (*domain.Wishlist, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if strings.TrimSpace(productID) == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	wishlist, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if wishlist.Contains(productID) {
		return wishlist, nil
	}

	wishlist.ProductIDs = append(wishlist.ProductIDs, productID)
	if err := s.repo.Save(ctx, wishlist); err != nil {
		return nil, fmt.Errorf("save wishlist: %w", err)
	}

	s.publishUpdated(ctx, wishlist)

	s.logger.InfoContext(ctx, "product added to wishlist",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
	)

	return wishlist, nil
}

// Remove deletes a product id from the wishlist. Removing an absent id is a
// no-op.
func (s *WishlistService) Remove(ctx context.Context, userID, productID string) (*domain.Wishlist, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	wishlist, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := wishlist.ProductIDs[:0]
	for _, id := range wishlist.ProductIDs {
		if id != productID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(wishlist.ProductIDs) {
		return wishlist, nil
	}
	wishlist.ProductIDs = kept

	if err := s.repo.Save(ctx, wishlist); err != nil {
		return nil, fmt.Errorf("save wishlist: %w", err)
	}

	s.publishUpdated(ctx, wishlist)

	s.logger.InfoContext(ctx, "product removed from wishlist",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
	)

	return wishlist, nil
}

// Contains reports whether the given product id is in the user's wishlist.
func (s *WishlistService) Contains(ctx context.Context, userID, productID string) (bool, error) {
	wishlist, err := s.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return wishlist.Contains(productID), nil
}

// Clear removes the user's wishlist entirely.
func (s *WishlistService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.InvalidInput("user id is required")
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("clear wishlist: %w", err)
	}

	s.publishUpdated(ctx, emptyWishlist(userID))

	s.logger.InfoContext(ctx, "wishlist cleared", slog.String("user_id", userID))
	return nil
}

func (s *WishlistService) publishUpdated(ctx context.Context, wishlist *domain.Wishlist) {
	if err := s.producer.PublishWishlistUpdated(ctx, wishlist); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish wishlist.updated event",
			slog.String("user_id", wishlist.UserID),
			slog.String("error", err.Error()),
		)
	}
}

func emptyWishlist(userID string) *domain.Wishlist {
	return &domain.Wishlist{
		UserID:     userID,
		ProductIDs: []string{},
	}
}
