package domain

// Cart holds a user's shopping cart as an ordered list of line items.
type Cart struct {
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
}

// CartItem is one cart line: a product snapshot taken at add time, the chosen
// variant, and a quantity. The snapshot keeps the line renderable and priceable
// even if the catalog entry changes later.
type CartItem struct {
	ID         string  `json:"id"`
	Product    Product `json:"product"`
	VariantSKU string  `json:"variant_sku"`
	Quantity   int     `json:"quantity"`
}

// TotalAmount sums quantity times effective unit price across all lines, in cents.
func (c *Cart) TotalAmount() int64 {
	var total int64
	for i := range c.Items {
		total += c.Items[i].Product.EffectivePrice() * int64(c.Items[i].Quantity)
	}
	return total
}

// ItemCount returns the total quantity across all lines (badge count, not line count).
func (c *Cart) ItemCount() int {
	var count int
	for i := range c.Items {
		count += c.Items[i].Quantity
	}
	return count
}

// FindLineIndex returns the index of the line matching the given product and
// variant SKU, or -1 if not found. At most one line exists per
// (product id, variant SKU) pair.
func (c *Cart) FindLineIndex(productID, variantSKU string) int {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID && c.Items[i].VariantSKU == variantSKU {
			return i
		}
	}
	return -1
}

// FindItemIndex returns the index of the line with the given line id, or -1.
func (c *Cart) FindItemIndex(itemID string) int {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}
