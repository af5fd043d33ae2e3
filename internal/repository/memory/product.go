package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/domain"
	apperrors "github.com/muhammadnaveedsaleem774/noorfab/pkg/errors"
)

func mustParseTime(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}

// ProductRepository implements repository.ProductRepository over an in-memory
// seeded catalog. Reads return copies so callers cannot mutate the seed data.
type ProductRepository struct {
	mu          sync.RWMutex
	products    []domain.Product
	byID        map[string]int
	bySlug      map[string]int
	collections []domain.Collection
	members     map[string][]string
}

// NewProductRepository creates a product repository seeded with the demo catalog.
func NewProductRepository() *ProductRepository {
	r := &ProductRepository{
		products: seedProducts(),
		byID:     make(map[string]int),
		bySlug:   make(map[string]int),
	}
	r.collections, r.members = seedCollections()

	for i := range r.products {
		r.byID[r.products[i].ID] = i
		r.bySlug[r.products[i].Slug] = i
	}
	sort.SliceStable(r.collections, func(i, j int) bool {
		return r.collections[i].DisplayOrder < r.collections[j].DisplayOrder
	})

	return r
}

// List returns all products in catalog order.
func (r *ProductRepository) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its unique identifier.
func (r *ProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("product", id)
	}
	p := r.products[i]
	return &p, nil
}

// GetBySlug retrieves a product by its URL-friendly slug.
func (r *ProductRepository) GetBySlug(_ context.Context, slug string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.bySlug[slug]
	if !ok {
		return nil, apperrors.NotFound("product", slug)
	}
	p := r.products[i]
	return &p, nil
}

// Search returns products whose name or description contains the query,
// case-insensitively. A blank query matches everything.
func (r *ProductRepository) Search(_ context.Context, query string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListCollections returns all collections sorted by display order, each with
// its member product count.
func (r *ProductRepository) ListCollections(_ context.Context) ([]domain.Collection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Collection, len(r.collections))
	copy(out, r.collections)
	for i := range out {
		out[i].ProductCount = len(r.members[out[i].Slug])
	}
	return out, nil
}

// GetCollectionBySlug retrieves a collection and its member products in the
// collection's curated order.
func (r *ProductRepository) GetCollectionBySlug(_ context.Context, slug string) (*domain.Collection, []domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.collections {
		if c.Slug != slug {
			continue
		}
		ids := r.members[slug]
		products := make([]domain.Product, 0, len(ids))
		for _, id := range ids {
			if i, ok := r.byID[id]; ok {
				products = append(products, r.products[i])
			}
		}
		c.ProductCount = len(products)
		return &c, products, nil
	}

	return nil, nil, apperrors.NotFound("collection", slug)
}
