package catalog

import "github.com/muhammadnaveedsaleem774/noorfab/internal/domain"

// PriceMaxUnbounded is the sentinel "no maximum" price filter value, in cents.
const PriceMaxUnbounded = 100000

// Filters holds the product filter criteria shared by the shop, search, and
// collection listings. Zero values (empty sets, empty material, zero rating)
// deactivate the corresponding criterion.
type Filters struct {
	PriceMin    int64    `json:"price_min"`
	PriceMax    int64    `json:"price_max"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Material    string   `json:"material"`
	MinRating   float64  `json:"min_rating"`
	InStockOnly bool     `json:"in_stock_only"`
}

// DefaultFilters returns the pass-everything filter state.
func DefaultFilters() Filters {
	return Filters{
		PriceMin: 0,
		PriceMax: PriceMaxUnbounded,
	}
}

// Active reports whether any criterion deviates from the defaults.
func (f Filters) Active() bool {
	return f.PriceMin > 0 || f.PriceMax < PriceMaxUnbounded ||
		len(f.Sizes) > 0 || len(f.Colors) > 0 ||
		f.Material != "" || f.MinRating > 0 || f.InStockOnly
}

// Filter returns the products matching ALL active criteria. Price bounds apply
// to the effective price (sale price when present). Size and color match if
// any variant matches; material is an exact match. The input is never mutated.
func Filter(products []domain.Product, f Filters) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for i := range products {
		if matches(&products[i], f) {
			out = append(out, products[i])
		}
	}
	return out
}

func matches(p *domain.Product, f Filters) bool {
	price := p.EffectivePrice()
	if price < f.PriceMin || price > f.PriceMax {
		return false
	}

	if len(f.Sizes) > 0 && !anyVariant(p, func(v *domain.ProductVariant) bool {
		return contains(f.Sizes, v.Size)
	}) {
		return false
	}

	if len(f.Colors) > 0 && !anyVariant(p, func(v *domain.ProductVariant) bool {
		return contains(f.Colors, v.Color)
	}) {
		return false
	}

	if f.Material != "" && p.Material != f.Material {
		return false
	}

	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}

	if f.InStockOnly && !p.InStock() {
		return false
	}

	return true
}

func anyVariant(p *domain.Product, pred func(*domain.ProductVariant) bool) bool {
	for i := range p.Variants {
		if pred(&p.Variants[i]) {
			return true
		}
	}
	return false
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
