package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/domain"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/service"
	"github.com/muhammadnaveedsaleem774/noorfab/pkg/httputil"
	"github.com/muhammadnaveedsaleem774/noorfab/pkg/pagination"
	"github.com/muhammadnaveedsaleem774/noorfab/pkg/validator"
)

// OrderHandler handles HTTP requests for checkout and order history.
type OrderHandler struct {
	service *service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order HTTP handler.
func NewOrderHandler(svc *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: svc,
		logger:  logger,
	}
}

// CheckoutRequest is the JSON request body for placing an order.
type CheckoutRequest struct {
	FullName   string `json:"full_name" validate:"required,min=1,max=120"`
	Phone      string `json:"phone" validate:"required,max=32"`
	Street     string `json:"street" validate:"required,max=200"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"max=100"`
	PostalCode string `json:"postal_code" validate:"max=20"`
	Country    string `json:"country" validate:"required,max=100"`
}

// Checkout handles POST /api/v1/orders
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req CheckoutRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	input := service.CheckoutInput{
		ShippingAddress: domain.Address{
			FullName:   req.FullName,
			Phone:      req.Phone,
			Street:     req.Street,
			City:       req.City,
			State:      req.State,
			PostalCode: req.PostalCode,
			Country:    req.Country,
		},
	}

	order, err := h.service.Checkout(r.Context(), userID, input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: order})
}

// ListOrders handles GET /api/v1/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	params := pagination.FromRequest(r)
	if r.URL.Query().Get("per_page") == "" {
		params.PerPage = service.OrdersPerPage
		params.Offset = (params.Page - 1) * params.PerPage
	}

	result, err := h.service.List(r.Context(), userID, params)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// GetOrder handles GET /api/v1/orders/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	orderID := chi.URLParam(r, "orderId")

	order, err := h.service.Get(r.Context(), userID, orderID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: order})
}
