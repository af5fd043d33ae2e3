package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/domain"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/event"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/repository/memory"
	redisrepo "github.com/muhammadnaveedsaleem774/noorfab/internal/repository/redis"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/service"
	"github.com/muhammadnaveedsaleem774/noorfab/pkg/health"
)

// envelope mirrors the standard response shape for decoding in tests.
type testEnvelope struct {
	Data     json.RawMessage `json:"data"`
	Warnings []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"warnings"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cartRepo := redisrepo.NewCartRepository(client, logger, 30*24*time.Hour)
	wishlistRepo := redisrepo.NewWishlistRepository(client, logger)
	profileRepo := redisrepo.NewProfileRepository(client, logger)
	productRepo := memory.NewProductRepository()
	orderRepo := memory.NewOrderRepository()

	producer := event.NewProducer(nil, logger)

	cartService := service.NewCartService(cartRepo, productRepo, producer, logger)
	orderService := service.NewOrderService(orderRepo, cartService, productRepo, producer, logger)

	return NewRouter(Services{
		Cart:     cartService,
		Wishlist: service.NewWishlistService(wishlistRepo, producer, logger),
		Catalog:  service.NewCatalogService(productRepo, logger),
		Orders:   orderService,
		Profile:  service.NewProfileService(profileRepo, logger),
	}, health.NewHandler(), logger, nil)
}

func doRequest(t *testing.T, router http.Handler, method, path, userID string, body any) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env testEnvelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

// --- Health ---

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// --- Catalog ---

func TestListProducts(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/products", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Data       []domain.Product `json:"data"`
		TotalCount int              `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 6, result.TotalCount)
	assert.Len(t, result.Data, 6)
}

func TestListProducts_FilterAndSortQuery(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/products?material=Cotton&sort=price-asc", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Data []domain.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.Len(t, result.Data, 3)
	for i := 1; i < len(result.Data); i++ {
		assert.LessOrEqual(t, result.Data[i-1].EffectivePrice(), result.Data[i].EffectivePrice())
	}
}

func TestListProducts_UnknownSort(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/products?sort=cheapest", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestGetProduct(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/products/lawn-kurti", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var p domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "3", p.ID)
}

func TestGetProduct_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/products/no-such-slug", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestGetCollection(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/collections/festive", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var detail struct {
		Collection domain.Collection `json:"collection"`
		Products   struct {
			TotalCount int `json:"total_count"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "Festive", detail.Collection.Name)
	assert.Equal(t, 2, detail.Products.TotalCount)
}

// --- Cart ---

func TestCart_RequiresUserID(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/cart", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestCart_AddAndGet(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", "user-9", AddItemRequest{
		ProductID:  "1",
		VariantSKU: "ALT-CT-001-M-W",
		Quantity:   2,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, env.Warnings)

	rec, env = doRequest(t, router, http.MethodGet, "/api/v1/cart", "user-9", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cart domain.Cart
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Classic Cotton Tee", cart.Items[0].Product.Name)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_AddBeyondStockWarns(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", "user-9", AddItemRequest{
		ProductID:  "1",
		VariantSKU: "ALT-CT-001-M-W",
		Quantity:   50,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, env.Warnings, 1)
	assert.Equal(t, "STOCK_EXCEEDED", env.Warnings[0].Code)
}

func TestCart_UpdateQuantityToZeroRemoves(t *testing.T) {
	router := newTestRouter(t)

	_, env := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", "user-9", AddItemRequest{
		ProductID:  "1",
		VariantSKU: "ALT-CT-001-M-W",
		Quantity:   2,
	})

	var cart domain.Cart
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Len(t, cart.Items, 1)
	itemID := cart.Items[0].ID

	rec, env := doRequest(t, router, http.MethodPut, "/api/v1/cart/items/"+itemID, "user-9", UpdateQuantityRequest{Quantity: 0})
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Empty(t, cart.Items)
}

func TestCart_UpdateNegativeQuantityRemoves(t *testing.T) {
	router := newTestRouter(t)

	_, env := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", "user-9", AddItemRequest{
		ProductID:  "1",
		VariantSKU: "ALT-CT-001-M-W",
		Quantity:   2,
	})

	var cart domain.Cart
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Len(t, cart.Items, 1)
	itemID := cart.Items[0].ID

	rec, env := doRequest(t, router, http.MethodPut, "/api/v1/cart/items/"+itemID, "user-9", UpdateQuantityRequest{Quantity: -3})
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Empty(t, cart.Items)
}

func TestCart_UpdateUnknownItemWarns(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodPut, "/api/v1/cart/items/no-such-line", "user-9", UpdateQuantityRequest{Quantity: 3})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, env.Warnings, 1)
	assert.Equal(t, "ITEM_NOT_FOUND", env.Warnings[0].Code)
}

func TestCart_InvalidBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-9")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// --- Wishlist ---

func TestWishlist_AddListRemove(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/wishlist/items", "user-9", AddProductRequest{ProductID: "3"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/wishlist", "user-9", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var wl domain.Wishlist
	require.NoError(t, json.Unmarshal(env.Data, &wl))
	assert.Equal(t, []string{"3"}, wl.ProductIDs)

	rec, env = doRequest(t, router, http.MethodDelete, "/api/v1/wishlist/items/3", "user-9", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(env.Data, &wl))
	assert.Empty(t, wl.ProductIDs)
}

func TestWishlist_Contains(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/wishlist/items", "user-9", AddProductRequest{ProductID: "3"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/wishlist/items/3", "user-9", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]bool
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.True(t, body["in_wishlist"])

	rec, env = doRequest(t, router, http.MethodGet, "/api/v1/wishlist/items/999", "user-9", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.False(t, body["in_wishlist"])
}

// --- Orders ---

func TestOrders_SeededHistory(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/orders", "user-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Data       []domain.Order `json:"data"`
		TotalCount int            `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, "ALN-GHI789", result.Data[0].OrderNumber)
}

func TestOrders_CheckoutFlow(t *testing.T) {
	router := newTestRouter(t)

	_, _ = doRequest(t, router, http.MethodPost, "/api/v1/cart/items", "user-9", AddItemRequest{
		ProductID:  "2",
		VariantSKU: "ALT-SL-002-M-S",
		Quantity:   1,
	})

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/orders", "user-9", CheckoutRequest{
		FullName: "Jane Doe",
		Phone:    "+1234567890",
		Street:   "123 Main St",
		City:     "Lahore",
		Country:  "Pakistan",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var order domain.Order
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, int64(5999), order.Subtotal)
	assert.Equal(t, int64(6499), order.TotalAmount)

	// The cart is emptied by checkout.
	rec, env = doRequest(t, router, http.MethodGet, "/api/v1/cart", "user-9", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cart domain.Cart
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Empty(t, cart.Items)
}

func TestOrders_CheckoutEmptyCart(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/orders", "user-9", CheckoutRequest{
		FullName: "Jane Doe",
		Phone:    "+1234567890",
		Street:   "123 Main St",
		City:     "Lahore",
		Country:  "Pakistan",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
}

func TestOrders_CheckoutMissingFields(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/orders", "user-9", CheckoutRequest{
		FullName: "Jane Doe",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

// --- Profile ---

func TestProfile_GetAndUpdate(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/profile", "user-9", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile domain.Profile
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Empty(t, profile.FullName)

	rec, env = doRequest(t, router, http.MethodPut, "/api/v1/profile", "user-9", UpdateProfileRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "Jane Doe", profile.FullName)

	rec, env = doRequest(t, router, http.MethodGet, "/api/v1/profile", "user-9", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "jane@example.com", profile.Email)
}
