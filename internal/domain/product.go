package domain

// Product is one catalog entry. Prices are in cents.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"original_price,omitempty"`
	Category      string   `json:"category"`
	CategoryID    string   `json:"category_id"`
	ImageURL      string   `json:"image_url"`
	Colors        []string `json:"colors"`
	Materials     []string `json:"materials"`
	InStock       bool     `json:"in_stock"`
	OnSale        bool     `json:"on_sale"`
	IsNew         bool     `json:"is_new"`
}

// FacetOption is one selectable value of a filterable attribute.
type FacetOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PriceRange is an inclusive [Min, Max] price interval in cents.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Sort keys accepted by the catalog listing.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortNewest    = "newest"
)

// SortKeys returns every accepted sort key.
func SortKeys() []string {
	return []string{SortFeatured, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc, SortNewest}
}

// IsValidSortKey reports whether key is an accepted sort key.
func IsValidSortKey(key string) bool {
	for _, k := range SortKeys() {
		if k == key {
			return true
		}
	}
	return false
}
