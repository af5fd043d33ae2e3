package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/catalog"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/domain"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/repository/memory"
	apperrors "github.com/muhammadnaveedsaleem774/noorfab/pkg/errors"
	"github.com/muhammadnaveedsaleem774/noorfab/pkg/pagination"
)

func newTestCatalogService() *CatalogService {
	return NewCatalogService(memory.NewProductRepository(), newTestLogger())
}

func defaultListInput() ListInput {
	return ListInput{
		Filters: catalog.DefaultFilters(),
		Page:    pagination.DefaultParams(),
	}
}

// --- List ---

func TestCatalogList_AllProducts(t *testing.T) {
	svc := newTestCatalogService()

	result, err := svc.List(context.Background(), defaultListInput())

	require.NoError(t, err)
	assert.Equal(t, 6, result.TotalCount)
	assert.Len(t, result.Data, 6)
	assert.Equal(t, 1, result.TotalPages)
	assert.False(t, result.HasNext)
}

func TestCatalogList_FilterThenSort(t *testing.T) {
	svc := newTestCatalogService()

	input := defaultListInput()
	input.Filters.Material = "Cotton"
	input.SortKey = catalog.SortPriceAsc

	result, err := svc.List(context.Background(), input)

	require.NoError(t, err)
	require.Len(t, result.Data, 3)
	for i := 1; i < len(result.Data); i++ {
		assert.LessOrEqual(t, result.Data[i-1].EffectivePrice(), result.Data[i].EffectivePrice())
	}
	for _, p := range result.Data {
		assert.Equal(t, "Cotton", p.Material)
	}
}

func TestCatalogList_Search(t *testing.T) {
	svc := newTestCatalogService()

	input := defaultListInput()
	input.Query = "linen"

	result, err := svc.List(context.Background(), input)

	require.NoError(t, err)
	// "Sage Linen Shirt", "Linen Blend Dress", plus "Lawn Kurti" does not match.
	assert.Equal(t, 2, result.TotalCount)
}

func TestCatalogList_SearchIsCaseInsensitive(t *testing.T) {
	svc := newTestCatalogService()

	input := defaultListInput()
	input.Query = "LINEN"

	result, err := svc.List(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)
}

func TestCatalogList_UnknownSortKey(t *testing.T) {
	svc := newTestCatalogService()

	input := defaultListInput()
	input.SortKey = "cheapest"

	_, err := svc.List(context.Background(), input)

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCatalogList_PageReconstruction(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	input := defaultListInput()
	input.Page = pagination.Params{Page: 1, PerPage: 2}

	var all []domain.Product
	for page := 1; ; page++ {
		input.Page.Page = page
		result, err := svc.List(ctx, input)
		require.NoError(t, err)
		all = append(all, result.Data...)
		if !result.HasNext {
			break
		}
	}

	full, err := svc.List(ctx, defaultListInput())
	require.NoError(t, err)
	assert.Equal(t, full.Data, all)
}

func TestCatalogList_PagePastEnd(t *testing.T) {
	svc := newTestCatalogService()

	input := defaultListInput()
	input.Page = pagination.Params{Page: 99, PerPage: 12}

	result, err := svc.List(context.Background(), input)

	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.Equal(t, 6, result.TotalCount)
}

// --- GetBySlug ---

func TestCatalogGetBySlug(t *testing.T) {
	svc := newTestCatalogService()

	product, err := svc.GetBySlug(context.Background(), "sage-linen-shirt")

	require.NoError(t, err)
	assert.Equal(t, "2", product.ID)
	assert.Equal(t, "Sage Linen Shirt", product.Name)
}

func TestCatalogGetBySlug_NotFound(t *testing.T) {
	svc := newTestCatalogService()

	product, err := svc.GetBySlug(context.Background(), "no-such-product")

	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogGetBySlug_Blank(t *testing.T) {
	svc := newTestCatalogService()

	_, err := svc.GetBySlug(context.Background(), "  ")

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

// --- Collections ---

func TestCatalogListCollections_DisplayOrder(t *testing.T) {
	svc := newTestCatalogService()

	collections, err := svc.ListCollections(context.Background())

	require.NoError(t, err)
	require.Len(t, collections, 6)
	for i := 1; i < len(collections); i++ {
		assert.Less(t, collections[i-1].DisplayOrder, collections[i].DisplayOrder)
	}
	assert.Equal(t, "lawn", collections[0].Slug)
	assert.Positive(t, collections[0].ProductCount)
}

func TestCatalogGetCollection(t *testing.T) {
	svc := newTestCatalogService()

	detail, err := svc.GetCollection(context.Background(), "festive", defaultListInput())

	require.NoError(t, err)
	assert.Equal(t, "Festive", detail.Collection.Name)
	assert.Equal(t, 2, detail.Products.TotalCount)
}

func TestCatalogGetCollection_PipelineApplies(t *testing.T) {
	svc := newTestCatalogService()

	input := defaultListInput()
	input.Filters.Material = "Silk"

	detail, err := svc.GetCollection(context.Background(), "festive", input)

	require.NoError(t, err)
	require.Len(t, detail.Products.Data, 1)
	assert.Equal(t, "6", detail.Products.Data[0].ID)
}

func TestCatalogGetCollection_NotFound(t *testing.T) {
	svc := newTestCatalogService()

	detail, err := svc.GetCollection(context.Background(), "no-such-collection", defaultListInput())

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
