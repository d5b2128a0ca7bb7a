package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hellospace/storefront/internal/domain"
	"github.com/hellospace/storefront/internal/repository"
	"github.com/hellospace/storefront/pkg/apperr"
)

// ListProductsInput holds the catalog listing parameters. A nil PriceRange
// means the catalog-wide bounds.
type ListProductsInput struct {
	Query      string
	Categories []string
	Colors     []string
	Materials  []string
	PriceRange *domain.PriceRange
	InStock    bool
	OnSale     bool
	Sort       string
}

// ProductListing is the result of a catalog listing.
type ProductListing struct {
	Items             []domain.Product  `json:"items"`
	Total             int               `json:"total"`
	ActiveFilterCount int               `json:"active_filter_count"`
	PriceBounds       domain.PriceRange `json:"price_bounds"`
}

// Facets describes everything the shop page needs to render its filter panel.
type Facets struct {
	Categories  []domain.FacetOption `json:"categories"`
	Colors      []domain.FacetOption `json:"colors"`
	Materials   []domain.FacetOption `json:"materials"`
	PriceBounds domain.PriceRange    `json:"price_bounds"`
	SortKeys    []string             `json:"sort_keys"`
}

// CatalogService serves product listings, lookups, and facet metadata.
type CatalogService struct {
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewCatalogService creates a catalog service.
func NewCatalogService(products repository.ProductRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{products: products, logger: logger}
}

// ListProducts returns the products matching the given filters, sorted.
func (s *CatalogService) ListProducts(ctx context.Context, input ListProductsInput) (*ProductListing, error) {
	sortKey := input.Sort
	if sortKey == "" {
		sortKey = domain.SortFeatured
	}
	if !domain.IsValidSortKey(sortKey) {
		return nil, apperr.InvalidInput(fmt.Sprintf("unknown sort key %q", sortKey))
	}

	bounds, err := s.products.PriceBounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("price bounds: %w", err)
	}

	priceRange := bounds
	if input.PriceRange != nil {
		if input.PriceRange.Min > input.PriceRange.Max {
			return nil, apperr.InvalidInput("price range min must not exceed max")
		}
		priceRange = *input.PriceRange
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	spec := domain.FilterSpec{
		PriceRange: priceRange,
		Categories: input.Categories,
		Colors:     input.Colors,
		Materials:  input.Materials,
		InStock:    input.InStock,
		OnSale:     input.OnSale,
	}

	items := domain.FilterProducts(products, spec, input.Query, sortKey)

	return &ProductListing{
		Items:             items,
		Total:             len(items),
		ActiveFilterCount: domain.ActiveFilterCount(spec, bounds),
		PriceBounds:       bounds,
	}, nil
}

// GetProduct looks a product up by ID, falling back to the URL slug.
func (s *CatalogService) GetProduct(ctx context.Context, idOrSlug string) (*domain.Product, error) {
	if idOrSlug == "" {
		return nil, apperr.InvalidInput("product id is required")
	}

	product, err := s.products.GetByID(ctx, idOrSlug)
	if err == nil {
		return product, nil
	}

	return s.products.GetBySlug(ctx, idOrSlug)
}

// GetFacets returns the filter panel metadata.
func (s *CatalogService) GetFacets(ctx context.Context) (*Facets, error) {
	categories, err := s.products.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	colors, err := s.products.Colors(ctx)
	if err != nil {
		return nil, fmt.Errorf("colors: %w", err)
	}
	materials, err := s.products.Materials(ctx)
	if err != nil {
		return nil, fmt.Errorf("materials: %w", err)
	}
	bounds, err := s.products.PriceBounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("price bounds: %w", err)
	}

	return &Facets{
		Categories:  categories,
		Colors:      colors,
		Materials:   materials,
		PriceBounds: bounds,
		SortKeys:    domain.SortKeys(),
	}, nil
}
