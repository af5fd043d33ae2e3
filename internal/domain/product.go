package domain

// Product status constants.
const (
	ProductStatusActive   = "ACTIVE"
	ProductStatusInactive = "INACTIVE"
	ProductStatusArchived = "ARCHIVED"
)

// Product represents a catalog product with its variants and images.
// Prices are integer minor units (cents).
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	CategoryID  string           `json:"category_id"`
	Description string           `json:"description"`
	Price       int64            `json:"price"`
	SalePrice   *int64           `json:"sale_price,omitempty"`
	Material    string           `json:"material"`
	Rating      float64          `json:"rating"`
	SKU         string           `json:"sku"`
	Status      string           `json:"status"`
	Images      []ProductImage   `json:"images"`
	Variants    []ProductVariant `json:"variants"`
}

// ProductVariant is a specific size/color combination of a product, each with
// independent stock and SKU.
type ProductVariant struct {
	Size       string `json:"size"`
	Color      string `json:"color"`
	Stock      int    `json:"stock"`
	VariantSKU string `json:"variant_sku"`
}

// ProductImage is an image associated with a product.
type ProductImage struct {
	URL     string `json:"url"`
	AltText string `json:"alt_text"`
	Order   int    `json:"order"`
}

// EffectivePrice returns the sale price when present, else the list price.
func (p *Product) EffectivePrice() int64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// FindVariant returns the variant with the given SKU, or nil if none matches.
func (p *Product) FindVariant(variantSKU string) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].VariantSKU == variantSKU {
			return &p.Variants[i]
		}
	}
	return nil
}

// InStock reports whether any variant has stock available.
func (p *Product) InStock() bool {
	for i := range p.Variants {
		if p.Variants[i].Stock > 0 {
			return true
		}
	}
	return false
}

// Collection is a curated, ordered grouping of products.
type Collection struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	DisplayOrder int    `json:"display_order"`
	ProductCount int    `json:"product_count"`
}
