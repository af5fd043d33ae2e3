package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/domain"
	apperrors "github.com/muhammadnaveedsaleem774/noorfab/pkg/errors"
)

// OrderRepository implements repository.OrderRepository in memory, seeded with
// demo orders so the account views have history out of the box.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewOrderRepository creates an order repository seeded with demo orders.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: seedOrders()}
}

// Create appends a new order.
func (r *OrderRepository) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, *order)
	return nil
}

// GetByID retrieves an order scoped to the given user. Another user's order
// reads as not found rather than forbidden, so order IDs are not probeable.
func (r *OrderRepository) GetByID(_ context.Context, userID, orderID string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.orders {
		if r.orders[i].ID == orderID && r.orders[i].UserID == userID {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, apperrors.NotFound("order", orderID)
}

// List returns the user's orders, newest first.
func (r *OrderRepository) List(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, 0)
	for i := range r.orders {
		if r.orders[i].UserID == userID {
			out = append(out, r.orders[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
