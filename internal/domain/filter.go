package domain

import (
	"cmp"
	"slices"
	"strings"
)

// FilterSpec narrows the catalog by facet. Empty Category/Color/Material sets
// impose no restriction on that facet; callers opt into narrowing by adding
// values. PriceRange is always applied, inclusive on both bounds.
type FilterSpec struct {
	PriceRange PriceRange `json:"price_range"`
	Categories []string   `json:"categories"`
	Colors     []string   `json:"colors"`
	Materials  []string   `json:"materials"`
	InStock    bool       `json:"in_stock"`
	OnSale     bool       `json:"on_sale"`
}

// FilterProducts derives the visible product list from the catalog. Each pass
// narrows the working set; the passes commute, except the sort, which runs
// last. The input slice is never mutated.
//
// The spec is not validated here; the HTTP layer checks query parameters
// before constructing one.
func FilterProducts(products []Product, spec FilterSpec, query, sortKey string) []Product {
	result := slices.Clone(products)

	if query != "" {
		q := strings.ToLower(query)
		result = keep(result, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Category), q)
		})
	}

	if len(spec.Categories) > 0 {
		result = keep(result, func(p Product) bool {
			return slices.Contains(spec.Categories, p.CategoryID)
		})
	}

	if len(spec.Colors) > 0 {
		result = keep(result, func(p Product) bool {
			return intersects(p.Colors, spec.Colors)
		})
	}

	if len(spec.Materials) > 0 {
		result = keep(result, func(p Product) bool {
			return intersects(p.Materials, spec.Materials)
		})
	}

	result = keep(result, func(p Product) bool {
		return p.Price >= spec.PriceRange.Min && p.Price <= spec.PriceRange.Max
	})

	if spec.InStock {
		result = keep(result, func(p Product) bool { return p.InStock })
	}

	if spec.OnSale {
		result = keep(result, func(p Product) bool { return p.OnSale })
	}

	sortProducts(result, sortKey)
	return result
}

// ActiveFilterCount counts the non-default facets of spec for UI badges:
// each selected category, color, and material counts one, the stock and sale
// flags count one each, and a price range narrower than the catalog-wide
// bounds counts one.
func ActiveFilterCount(spec FilterSpec, bounds PriceRange) int {
	n := len(spec.Categories) + len(spec.Colors) + len(spec.Materials)
	if spec.InStock {
		n++
	}
	if spec.OnSale {
		n++
	}
	if spec.PriceRange != bounds {
		n++
	}
	return n
}

func sortProducts(products []Product, sortKey string) {
	switch sortKey {
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortNameAsc:
		slices.SortStableFunc(products, func(a, b Product) int {
			return strings.Compare(a.Name, b.Name)
		})
	case SortNameDesc:
		slices.SortStableFunc(products, func(a, b Product) int {
			return strings.Compare(b.Name, a.Name)
		})
	case SortNewest:
		// New arrivals first; stable, so catalog order is preserved within
		// each group.
		slices.SortStableFunc(products, func(a, b Product) int {
			switch {
			case a.IsNew == b.IsNew:
				return 0
			case a.IsNew:
				return -1
			default:
				return 1
			}
		})
	default:
		// SortFeatured: catalog's natural order, no reordering.
	}
}

func keep(products []Product, pred func(Product) bool) []Product {
	out := products[:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if slices.Contains(b, v) {
			return true
		}
	}
	return false
}
