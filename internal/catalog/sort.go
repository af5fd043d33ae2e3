package catalog

import (
	"sort"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/domain"
)

// Sort keys accepted by the product listings.
const (
	SortRelevance   = "relevance"
	SortPriceAsc    = "price-asc"
	SortPriceDesc   = "price-desc"
	SortRating      = "rating"
	SortBestselling = "bestselling"
	SortNewest      = "newest"
)

// ValidSortKey reports whether the given key is a known sort option.
func ValidSortKey(key string) bool {
	switch key {
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortRating, SortBestselling, SortNewest:
		return true
	}
	return false
}

// Sort returns a sorted shallow copy of the products; the input is never
// mutated. Relevance and newest preserve the input order (caller-supplied
// ranking; the source feed is newest-first). Bestselling sorts by rating as a
// proxy since no sales-volume data exists. Unknown keys fall back to newest.
func Sort(products []domain.Product, key string) []domain.Product {
	list := make([]domain.Product, len(products))
	copy(list, products)

	switch key {
	case SortPriceAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].EffectivePrice() < list[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].EffectivePrice() > list[j].EffectivePrice()
		})
	case SortRating, SortBestselling:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Rating > list[j].Rating
		})
	default:
		// SortRelevance, SortNewest, or unknown: keep input order.
	}

	return list
}
