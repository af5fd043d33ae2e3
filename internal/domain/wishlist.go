package domain

// Wishlist is a user's saved-product set. Semantically a set, but insertion
// order is preserved for stable rendering.
type Wishlist struct {
	UserID     string   `json:"user_id"`
	ProductIDs []string `json:"product_ids"`
}

// Contains reports whether the given product id is in the wishlist.
func (w *Wishlist) Contains(productID string) bool {
	for _, id := range w.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}
