package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/domain"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/event"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/repository/memory"
	apperrors "github.com/muhammadnaveedsaleem774/noorfab/pkg/errors"
)

// --- Mock Repository ---

type mockCartRepository struct {
	mock.Mock
}

func (m *mockCartRepository) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *mockCartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *mockCartRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestCartService(repo *mockCartRepository) *CartService {
	logger := newTestLogger()
	producer := event.NewProducer(nil, logger)
	return NewCartService(repo, memory.NewProductRepository(), producer, logger)
}

func newCartWithItem(userID string) *domain.Cart {
	return &domain.Cart{
		UserID: userID,
		Items: []domain.CartItem{
			{
				ID: "line-1",
				Product: domain.Product{
					ID:    "1",
					Name:  "Classic Cotton Tee",
					Price: 2999,
					Variants: []domain.ProductVariant{
						{Size: "M", Color: "White", Stock: 15, VariantSKU: "ALT-CT-001-M-W"},
					},
				},
				VariantSKU: "ALT-CT-001-M-W",
				Quantity:   2,
			},
		},
	}
}

// --- Get ---

func TestCartGet_EmptyFallback(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(nil, apperrors.NotFound("cart", "user-1"))

	cart, err := svc.Get(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "user-1", cart.UserID)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}

func TestCartGet_MissingUserID(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	cart, err := svc.Get(context.Background(), "")

	assert.Nil(t, cart)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

// --- AddItem ---

func TestAddItem_NewLine(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(nil, apperrors.NotFound("cart", "user-1"))
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Cart")).Return(nil)

	cart, warnings, err := svc.AddItem(ctx, "user-1", AddItemInput{
		ProductID:  "1",
		VariantSKU: "ALT-CT-001-M-W",
		Quantity:   2,
	})

	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, cart.Items, 1)
	assert.NotEmpty(t, cart.Items[0].ID)
	assert.Equal(t, "1", cart.Items[0].Product.ID)
	assert.Equal(t, "Classic Cotton Tee", cart.Items[0].Product.Name)
	assert.Equal(t, "ALT-CT-001-M-W", cart.Items[0].VariantSKU)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	repo.AssertExpectations(t)
}

func TestAddItem_MergesSameProductVariant(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)
	ctx := context.Background()

	existing := newCartWithItem("user-1")
	repo.On("Get", ctx, "user-1").Return(existing, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Cart")).Return(nil)

	cart, warnings, err := svc.AddItem(ctx, "user-1", AddItemInput{
		ProductID:  "1",
		VariantSKU: "ALT-CT-001-M-W",
		Quantity:   3,
	})

	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, "line-1", cart.Items[0].ID)
}

func TestAddItem_DifferentVariantAddsLine(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)
	ctx := context.Background()

	existing := newCartWithItem("user-1")
	repo.On("Get", ctx, "user-1").Return(existing, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Cart")).Return(nil)

	cart, _, err := svc.AddItem(ctx, "user-1", AddItemInput{
		ProductID:  "1",
		VariantSKU: "ALT-CT-001-S-W",
		Quantity:   1,
	})

	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, "ALT-CT-001-S-W", cart.Items[1].VariantSKU)
}

func TestAddItem_StockExceededWarns(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(nil, apperrors.NotFound("cart", "user-1"))
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Cart")).Return(nil)

	// ALT-CT-001-M-W has 15 in stock; the add still succeeds.
	cart, warnings, err := svc.AddItem(ctx, "user-1", AddItemInput{
		ProductID:  "1",
		VariantSKU: "ALT-CT-001-M-W",
		Quantity:   20,
	})

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 20, cart.Items[0].Quantity)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningStockExceeded, warnings[0].Code)
}

func TestAddItem_OutOfStockVariantWarns(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(nil, apperrors.NotFound("cart", "user-1"))
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Cart")).Return(nil)

	// The Lawn Kurti L/Beige variant has zero stock.
	cart, warnings, err := svc.AddItem(ctx, "user-1", AddItemInput{
		ProductID:  "3",
		VariantSKU: "ALT-LK-003-L-B",
		Quantity:   1,
	})

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningStockExceeded, warnings[0].Code)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	cart, _, err := svc.AddItem(context.Background(), "user-1", AddItemInput{
		ProductID:  "999",
		VariantSKU: "NOPE",
		Quantity:   1,
	})

	assert.Nil(t, cart)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAddItem_UnknownVariant(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	cart, _, err := svc.AddItem(context.Background(), "user-1", AddItemInput{
		ProductID:  "1",
		VariantSKU: "ALT-CT-001-XL-G",
		Quantity:   1,
	})

	assert.Nil(t, cart)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestAddItem_InvalidQuantity(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	_, _, err := svc.AddItem(context.Background(), "user-1", AddItemInput{
		ProductID:  "1",
		VariantSKU: "ALT-CT-001-M-W",
		Quantity:   0,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, _, err = svc.AddItem(context.Background(), "user-1", AddItemInput{
		ProductID:  "1",
		VariantSKU: "ALT-CT-001-M-W",
		Quantity:   MaxQuantityPerItem + 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

// --- UpdateItemQuantity ---

func TestUpdateItemQuantity_SetsQuantity(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(newCartWithItem("user-1"), nil)
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Cart")).Return(nil)

	cart, warnings, err := svc.UpdateItemQuantity(ctx, "user-1", "line-1", 7)

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestUpdateItemQuantity_ZeroRemovesLine(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(newCartWithItem("user-1"), nil)
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Cart")).Return(nil)

	cart, _, err := svc.UpdateItemQuantity(ctx, "user-1", "line-1", 0)

	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestUpdateItemQuantity_NegativeRemovesLine(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(newCartWithItem("user-1"), nil)
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Cart")).Return(nil)

	cart, _, err := svc.UpdateItemQuantity(ctx, "user-1", "line-1", -3)

	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestUpdateItemQuantity_UnknownLineWarnsWithoutChange(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(newCartWithItem("user-1"), nil)

	cart, warnings, err := svc.UpdateItemQuantity(ctx, "user-1", "line-999", 3)

	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningItemNotFound, warnings[0].Code)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateItemQuantity_StockExceededWarns(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(newCartWithItem("user-1"), nil)
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Cart")).Return(nil)

	cart, warnings, err := svc.UpdateItemQuantity(ctx, "user-1", "line-1", 50)

	require.NoError(t, err)
	assert.Equal(t, 50, cart.Items[0].Quantity)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningStockExceeded, warnings[0].Code)
}

// --- RemoveItem ---

func TestRemoveItem(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(newCartWithItem("user-1"), nil)
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Cart")).Return(nil)

	cart, warnings, err := svc.RemoveItem(ctx, "user-1", "line-1")

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Empty(t, cart.Items)
}

func TestRemoveItem_UnknownLineWarns(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(newCartWithItem("user-1"), nil)

	cart, warnings, err := svc.RemoveItem(ctx, "user-1", "line-999")

	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningItemNotFound, warnings[0].Code)
	require.Len(t, cart.Items, 1)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// --- Clear ---

func TestCartClear(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, "user-1").Return(nil)

	require.NoError(t, svc.Clear(ctx, "user-1"))
	repo.AssertExpectations(t)
}
