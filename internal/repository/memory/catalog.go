package memory

import (
	"context"
	"slices"

	"github.com/hellospace/storefront/internal/domain"
	"github.com/hellospace/storefront/pkg/apperr"
	"github.com/hellospace/storefront/pkg/slug"
)

// ProductRepository serves the curated catalog from memory. The collection is
// small and changes only with a deploy, so there is no backing store.
type ProductRepository struct {
	products []domain.Product
	byID     map[string]int
	bySlug   map[string]int
	bounds   domain.PriceRange

	categories []domain.FacetOption
	colors     []domain.FacetOption
	materials  []domain.FacetOption
}

// NewProductRepository builds a read-only repository over the given products.
// Slugs are derived from names when absent.
func NewProductRepository(products []domain.Product) *ProductRepository {
	r := &ProductRepository{
		products: slices.Clone(products),
		byID:     make(map[string]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}

	var maxPrice int64
	for i := range r.products {
		p := &r.products[i]
		if p.Slug == "" {
			p.Slug = slug.Make(p.Name)
		}
		r.byID[p.ID] = i
		r.bySlug[p.Slug] = i
		if p.Price > maxPrice {
			maxPrice = p.Price
		}
	}

	// Round the upper bound up so the default price filter never clips the
	// most expensive product.
	r.bounds = domain.PriceRange{Min: 0, Max: roundUpTo(maxPrice, 50000)}

	r.categories = facetOptions(r.products, func(p domain.Product) []domain.FacetOption {
		return []domain.FacetOption{{ID: p.CategoryID, Name: p.Category}}
	})
	r.colors = facetOptions(r.products, func(p domain.Product) []domain.FacetOption {
		return idOnlyOptions(p.Colors)
	})
	r.materials = facetOptions(r.products, func(p domain.Product) []domain.FacetOption {
		return idOnlyOptions(p.Materials)
	})

	return r
}

// NewSampleProductRepository returns the repository seeded with the Hello
// Space interior collection.
func NewSampleProductRepository() *ProductRepository {
	return NewProductRepository(sampleProducts())
}

// List returns the full catalog in display order.
func (r *ProductRepository) List(_ context.Context) ([]domain.Product, error) {
	return slices.Clone(r.products), nil
}

// GetByID returns the product with the given ID.
func (r *ProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, apperr.NotFound("product", id)
	}
	p := r.products[i]
	return &p, nil
}

// GetBySlug returns the product with the given URL slug.
func (r *ProductRepository) GetBySlug(_ context.Context, s string) (*domain.Product, error) {
	i, ok := r.bySlug[s]
	if !ok {
		return nil, apperr.NotFound("product", s)
	}
	p := r.products[i]
	return &p, nil
}

// PriceBounds returns the catalog-wide price range.
func (r *ProductRepository) PriceBounds(_ context.Context) (domain.PriceRange, error) {
	return r.bounds, nil
}

// Categories returns the selectable category facet options.
func (r *ProductRepository) Categories(_ context.Context) ([]domain.FacetOption, error) {
	return slices.Clone(r.categories), nil
}

// Colors returns the selectable color facet options.
func (r *ProductRepository) Colors(_ context.Context) ([]domain.FacetOption, error) {
	return slices.Clone(r.colors), nil
}

// Materials returns the selectable material facet options.
func (r *ProductRepository) Materials(_ context.Context) ([]domain.FacetOption, error) {
	return slices.Clone(r.materials), nil
}

// facetOptions collects distinct options across products, first occurrence
// wins for ordering.
func facetOptions(products []domain.Product, extract func(domain.Product) []domain.FacetOption) []domain.FacetOption {
	seen := make(map[string]bool)
	var out []domain.FacetOption
	for _, p := range products {
		for _, opt := range extract(p) {
			if opt.ID == "" || seen[opt.ID] {
				continue
			}
			seen[opt.ID] = true
			out = append(out, opt)
		}
	}
	return out
}

func idOnlyOptions(ids []string) []domain.FacetOption {
	out := make([]domain.FacetOption, len(ids))
	for i, id := range ids {
		out[i] = domain.FacetOption{ID: id, Name: titleCase(id)}
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

func roundUpTo(v, step int64) int64 {
	if step <= 0 || v%step == 0 {
		return v
	}
	return (v/step + 1) * step
}
