package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/catalog"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/domain"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/repository"
	apperrors "github.com/muhammadnaveedsaleem774/noorfab/pkg/errors"
	"github.com/muhammadnaveedsaleem774/noorfab/pkg/pagination"
)

// ListInput holds the query parameters for a product listing: filters, a sort
// key, and pagination.
type ListInput struct {
	Filters    catalog.Filters
	SortKey    string
	Page       pagination.Params
	Query      string
	Collection string
}

// CollectionDetail is a collection plus its (filtered, sorted, paginated)
// member products.
type CollectionDetail struct {
	Collection domain.Collection                 `json:"collection"`
	Products   pagination.Result[domain.Product] `json:"products"`
}

// CatalogService serves product listings by running the shared
// filter/sort/paginate pipeline over the catalog.
type CatalogService struct {
	repo   repository.ProductRepository
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.ProductRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logger,
	}
}

// List returns one page of products matching the input. The pipeline order is
// fixed: source (full catalog, search results, or a collection), then filter,
// then sort, then paginate.
func (s *CatalogService) List(ctx context.Context, input ListInput) (pagination.Result[domain.Product], error) {
	var zero pagination.Result[domain.Product]

	if input.SortKey != "" && !catalog.ValidSortKey(input.SortKey) {
		return zero, apperrors.InvalidInput("unknown sort key: " + input.SortKey)
	}

	products, err := s.source(ctx, input)
	if err != nil {
		return zero, err
	}

	products = catalog.Filter(products, input.Filters)
	products = catalog.Sort(products, input.SortKey)
	page := pagination.Page(products, input.Page.Page, input.Page.PerPage)

	return pagination.NewResult(page, len(products), input.Page), nil
}

// GetBySlug retrieves one product by its URL-friendly slug.
func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, apperrors.InvalidInput("slug is required")
	}
	product, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	return product, nil
}

// GetByID retrieves one product by id.
func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// ListCollections returns all collections in display order.
func (s *CatalogService) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	collections, err := s.repo.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return collections, nil
}

// GetCollection returns a collection and one page of its member products run
// through the same pipeline as the shop listing.
func (s *CatalogService) GetCollection(ctx context.Context, slug string, input ListInput) (*CollectionDetail, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, apperrors.InvalidInput("collection slug is required")
	}
	if input.SortKey != "" && !catalog.ValidSortKey(input.SortKey) {
		return nil, apperrors.InvalidInput("unknown sort key: " + input.SortKey)
	}

	collection, products, err := s.repo.GetCollectionBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}

	products = catalog.Filter(products, input.Filters)
	products = catalog.Sort(products, input.SortKey)
	page := pagination.Page(products, input.Page.Page, input.Page.PerPage)

	return &CollectionDetail{
		Collection: *collection,
		Products:   pagination.NewResult(page, len(products), input.Page),
	}, nil
}

// source resolves the product universe a listing starts from.
func (s *CatalogService) source(ctx context.Context, input ListInput) ([]domain.Product, error) {
	if q := strings.TrimSpace(input.Query); q != "" {
		products, err := s.repo.Search(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("search products: %w", err)
		}
		s.logger.DebugContext(ctx, "product search",
			slog.String("query", q),
			slog.Int("hits", len(products)),
		)
		return products, nil
	}

	if input.Collection != "" {
		_, products, err := s.repo.GetCollectionBySlug(ctx, input.Collection)
		if err != nil {
			return nil, fmt.Errorf("get collection: %w", err)
		}
		return products, nil
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
