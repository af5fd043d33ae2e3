package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/domain"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/event"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/repository"
	apperrors "github.com/muhammadnaveedsaleem774/noorfab/pkg/errors"
)

// Cart operation upper-bound limits to prevent abuse. Variant stock is
// advisory and enforced at order time by a real backend, not here.
const (
	// MaxQuantityPerItem is the maximum quantity allowed for a single cart line.
	MaxQuantityPerItem = 100
	// MaxItemsPerCart is the maximum number of distinct lines allowed in a cart.
	MaxItemsPerCart = 50
)

// AddItemInput holds the parameters for adding an item to the cart.
type AddItemInput struct {
	ProductID  string `json:"product_id" validate:"required"`
	VariantSKU string `json:"variant_sku" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gte=1"`
}

// CartService implements the business logic for cart operations. Operations
// return the updated cart plus any advisory warnings; a warning never blocks
// the mutation it annotates.
type CartService struct {
	repo     repository.CartRepository
	products repository.ProductRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository, products repository.ProductRepository, producer *event.Producer, logger *slog.Logger) *CartService {
	return &CartService{
		repo:     repo,
		products: products,
		producer: producer,
		logger:   logger,
	}
}

// Get retrieves the cart for a user. A missing or expired cart reads as an
// empty one.
func (s *CartService) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return emptyCart(userID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return cart, nil
}

// AddItem adds a product variant to the user's cart. An existing line for the
// same product+variant merges by increasing quantity. Requesting more than the
// variant's known stock succeeds with a STOCK_EXCEEDED warning.
func (s *CartService) AddItem(ctx context.Context, userID string, input AddItemInput) (*domain.Cart, []Warning, error) {
	if userID == "" {
		return nil, nil, apperrors.InvalidInput("user id is required")
	}
	if input.ProductID == "" {
		return nil, nil, apperrors.InvalidInput("product id is required")
	}
	if input.VariantSKU == "" {
		return nil, nil, apperrors.InvalidInput("variant sku is required")
	}
	if input.Quantity <= 0 {
		return nil, nil, apperrors.InvalidInput("quantity must be greater than 0")
	}
	if input.Quantity > MaxQuantityPerItem {
		return nil, nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerItem))
	}

	product, err := s.products.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve product: %w", err)
	}
	variant := product.FindVariant(input.VariantSKU)
	if variant == nil {
		return nil, nil, apperrors.InvalidInput("unknown variant sku for product")
	}

	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	newQty := input.Quantity

	if i := cart.FindLineIndex(product.ID, input.VariantSKU); i >= 0 {
		newQty = cart.Items[i].Quantity + input.Quantity
		if newQty > MaxQuantityPerItem {
			return nil, nil, apperrors.InvalidInput(fmt.Sprintf("combined quantity must not exceed %d", MaxQuantityPerItem))
		}
		cart.Items[i].Quantity = newQty
		// Refresh the snapshot so price and name stay current.
		cart.Items[i].Product = *product
	} else {
		if len(cart.Items) >= MaxItemsPerCart {
			return nil, nil, apperrors.InvalidInput(fmt.Sprintf("cart must not contain more than %d items", MaxItemsPerCart))
		}
		cart.Items = append(cart.Items, domain.CartItem{
			ID:         uuid.New().String(),
			Product:    *product,
			VariantSKU: input.VariantSKU,
			Quantity:   input.Quantity,
		})
	}

	if newQty > variant.Stock {
		warnings = append(warnings, stockWarning(product.Name, input.VariantSKU, newQty, variant.Stock))
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishCartUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("user_id", userID),
		slog.String("product_id", input.ProductID),
		slog.String("variant_sku", input.VariantSKU),
		slog.Int("quantity", input.Quantity),
	)

	return cart, warnings, nil
}

// UpdateItemQuantity sets the quantity of a cart line by its line id. A
// quantity of zero or less removes the line. An unknown line id leaves the
// cart untouched and reports an ITEM_NOT_FOUND warning.
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.Cart, []Warning, error) {
	if userID == "" {
		return nil, nil, apperrors.InvalidInput("user id is required")
	}
	if itemID == "" {
		return nil, nil, apperrors.InvalidInput("item id is required")
	}
	if quantity > MaxQuantityPerItem {
		return nil, nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerItem))
	}

	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, itemID)
	}

	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	i := cart.FindItemIndex(itemID)
	if i < 0 {
		return cart, []Warning{{Code: WarningItemNotFound, Message: "cart item not found: " + itemID}}, nil
	}

	var warnings []Warning
	cart.Items[i].Quantity = quantity
	if v := cart.Items[i].Product.FindVariant(cart.Items[i].VariantSKU); v != nil && quantity > v.Stock {
		warnings = append(warnings, stockWarning(cart.Items[i].Product.Name, cart.Items[i].VariantSKU, quantity, v.Stock))
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishCartUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "cart item quantity updated",
		slog.String("user_id", userID),
		slog.String("item_id", itemID),
		slog.Int("quantity", quantity),
	)

	return cart, warnings, nil
}

// RemoveItem removes a cart line by its line id. An unknown line id leaves the
// cart untouched and reports an ITEM_NOT_FOUND warning.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) (*domain.Cart, []Warning, error) {
	if userID == "" {
		return nil, nil, apperrors.InvalidInput("user id is required")
	}
	if itemID == "" {
		return nil, nil, apperrors.InvalidInput("item id is required")
	}

	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	i := cart.FindItemIndex(itemID)
	if i < 0 {
		return cart, []Warning{{Code: WarningItemNotFound, Message: "cart item not found: " + itemID}}, nil
	}

	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishCartUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("user_id", userID),
		slog.String("item_id", itemID),
	)

	return cart, nil, nil
}

// Clear removes the user's cart entirely.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.InvalidInput("user id is required")
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	if err := s.producer.PublishCartCleared(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared", slog.String("user_id", userID))
	return nil
}

func (s *CartService) getOrCreateCart(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return emptyCart(userID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) publishCartUpdated(ctx context.Context, cart *domain.Cart) {
	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("user_id", cart.UserID),
			slog.String("error", err.Error()),
		)
	}
}

func emptyCart(userID string) *domain.Cart {
	return &domain.Cart{
		UserID: userID,
		Items:  []domain.CartItem{},
	}
}
