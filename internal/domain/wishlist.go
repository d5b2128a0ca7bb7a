package domain

import "time"

// Wishlist holds a user's saved-for-later products with set semantics: at
// most one entry per product id.
type Wishlist struct {
	UserID    string         `json:"user_id"`
	Items     []WishlistItem `json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// WishlistItem is a saved product. It copies the fields needed to render the
// wishlist page without a catalog lookup; moving to the cart copies them into
// a new cart line.
type WishlistItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"image_url,omitempty"`
	Slug      string `json:"slug"`
}

// Contains reports whether productID is saved.
func (w *Wishlist) Contains(productID string) bool {
	for i := range w.Items {
		if w.Items[i].ProductID == productID {
			return true
		}
	}
	return false
}

// ItemCount returns the number of saved products.
func (w *Wishlist) ItemCount() int {
	return len(w.Items)
}

// ItemIndex returns the index of the entry for productID, or -1.
func (w *Wishlist) ItemIndex(productID string) int {
	for i := range w.Items {
		if w.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
