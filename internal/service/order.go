package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/domain"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/event"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/repository"
	apperrors "github.com/muhammadnaveedsaleem774/noorfab/pkg/errors"
	"github.com/muhammadnaveedsaleem774/noorfab/pkg/pagination"
)

// ShippingFee is the flat shipping fee in cents applied to every order.
const ShippingFee int64 = 500

// OrdersPerPage is the page size for the account order history view.
const OrdersPerPage = 5

// CheckoutInput holds the parameters for placing an order from the current cart.
type CheckoutInput struct {
	ShippingAddress domain.Address `json:"shipping_address"`
}

// OrderService places orders from the cart and serves order history.
type OrderService struct {
	repo     repository.OrderRepository
	cart     *CartService
	products repository.ProductRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, cart *CartService, products repository.ProductRepository, producer *event.Producer, logger *slog.Logger) *OrderService {
	return &OrderService{
		repo:     repo,
		cart:     cart,
		products: products,
		producer: producer,
		logger:   logger,
	}
}

// Checkout places an order from the user's current cart. Unit prices are
// resolved from the catalog at checkout time, not from the cart snapshot, so
// the order reflects current pricing. The cart is cleared on success.
func (s *OrderService) Checkout(ctx context.Context, userID string, input CheckoutInput) (*domain.Order, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if input.ShippingAddress.FullName == "" || input.ShippingAddress.Street == "" ||
		input.ShippingAddress.City == "" || input.ShippingAddress.Country == "" {
		return nil, apperrors.InvalidInput("shipping address is incomplete")
	}

	cart, err := s.cart.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	items := make([]domain.OrderItem, 0, len(cart.Items))
	var subtotal int64
	for i := range cart.Items {
		line := &cart.Items[i]

		unitPrice := line.Product.EffectivePrice()
		if p, err := s.products.GetByID(ctx, line.Product.ID); err == nil {
			unitPrice = p.EffectivePrice()
		}

		items = append(items, domain.OrderItem{
			ProductID:  line.Product.ID,
			VariantSKU: line.VariantSKU,
			Quantity:   line.Quantity,
			UnitPrice:  unitPrice,
		})
		subtotal += unitPrice * int64(line.Quantity)
	}

	order := &domain.Order{
		ID:              uuid.New().String(),
		OrderNumber:     newOrderNumber(),
		UserID:          userID,
		Items:           items,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   domain.PaymentMethodCashOnDelivery,
		PaymentStatus:   domain.PaymentStatusPending,
		OrderStatus:     domain.OrderStatusPending,
		Subtotal:        subtotal,
		ShippingFee:     ShippingFee,
		TotalAmount:     subtotal + ShippingFee,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := s.cart.Clear(ctx, userID); err != nil {
		// The order is placed; a stale cart is recoverable by the user.
		s.logger.ErrorContext(ctx, "failed to clear cart after checkout",
			slog.String("user_id", userID),
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.producer.PublishOrderCreated(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order.created event",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("user_id", userID),
		slog.String("order_id", order.ID),
		slog.String("order_number", order.OrderNumber),
		slog.Int64("total_amount", order.TotalAmount),
	)

	return order, nil
}

// Get retrieves one of the user's orders by order id.
func (s *OrderService) Get(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if orderID == "" {
		return nil, apperrors.InvalidInput("order id is required")
	}

	order, err := s.repo.GetByID(ctx, userID, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// List returns one page of the user's orders, newest first.
func (s *OrderService) List(ctx context.Context, userID string, params pagination.Params) (pagination.Result[domain.Order], error) {
	var zero pagination.Result[domain.Order]
	if userID == "" {
		return zero, apperrors.InvalidInput("user id is required")
	}

	orders, err := s.repo.List(ctx, userID)
	if err != nil {
		return zero, fmt.Errorf("list orders: %w", err)
	}

	page := pagination.Page(orders, params.Page, params.PerPage)
	return pagination.NewResult(page, len(orders), params), nil
}

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newOrderNumber generates a human-readable order number like ALN-7GK2QD.
func newOrderNumber() string {
	buf := make([]byte, 6)
	// rand.Read on crypto/rand never fails on supported platforms.
	_, _ = rand.Read(buf)
	for i := range buf {
		buf[i] = orderNumberAlphabet[int(buf[i])%len(orderNumberAlphabet)]
	}
	return "ALN-" + string(buf)
}
