package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/catalog"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/service"
	"github.com/muhammadnaveedsaleem774/noorfab/pkg/httputil"
	"github.com/muhammadnaveedsaleem774/noorfab/pkg/pagination"
)

// ProductHandler handles HTTP requests for catalog endpoints. Catalog routes
// are public; no user context is required.
type ProductHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(svc *service.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// ListProducts handles GET /api/v1/products
//
// Query parameters: q (search), sort, page, per_page, price_min, price_max,
// sizes, colors (comma-separated), material, min_rating, in_stock.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	input := listInputFromRequest(r)

	result, err := h.service.List(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// GetProduct handles GET /api/v1/products/{slug}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// ListCollections handles GET /api/v1/collections
func (h *ProductHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.service.ListCollections(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: collections})
}

// GetCollection handles GET /api/v1/collections/{slug}
func (h *ProductHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	input := listInputFromRequest(r)

	detail, err := h.service.GetCollection(r.Context(), slug, input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: detail})
}

// listInputFromRequest builds the pipeline input from query parameters.
// Unparseable numeric values fall back to defaults rather than erroring, the
// same leniency a URL-driven storefront UI gives hand-edited links.
func listInputFromRequest(r *http.Request) service.ListInput {
	q := r.URL.Query()

	filters := catalog.DefaultFilters()
	if v, err := strconv.ParseInt(q.Get("price_min"), 10, 64); err == nil && v >= 0 {
		filters.PriceMin = v
	}
	if v, err := strconv.ParseInt(q.Get("price_max"), 10, 64); err == nil && v >= 0 {
		filters.PriceMax = v
	}
	filters.Sizes = splitCSV(q.Get("sizes"))
	filters.Colors = splitCSV(q.Get("colors"))
	filters.Material = q.Get("material")
	if v, err := strconv.ParseFloat(q.Get("min_rating"), 64); err == nil && v > 0 {
		filters.MinRating = v
	}
	if v, err := strconv.ParseBool(q.Get("in_stock")); err == nil {
		filters.InStockOnly = v
	}

	return service.ListInput{
		Filters: filters,
		SortKey: q.Get("sort"),
		Page:    pagination.FromRequest(r),
		Query:   q.Get("q"),
	}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
