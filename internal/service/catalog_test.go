package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellospace/storefront/internal/domain"
	"github.com/hellospace/storefront/pkg/apperr"
)

func newCatalogService(t *testing.T) *CatalogService {
	t.Helper()
	return NewCatalogService(testCatalog(t), testLogger())
}

func TestCatalogService_ListProducts_Defaults(t *testing.T) {
	svc := newCatalogService(t)

	listing, err := svc.ListProducts(context.Background(), ListProductsInput{})
	require.NoError(t, err)
	assert.Len(t, listing.Items, 9)
	assert.Equal(t, 9, listing.Total)
	assert.Zero(t, listing.ActiveFilterCount)
	assert.Equal(t, domain.PriceRange{Min: 0, Max: 150000}, listing.PriceBounds)
}

func TestCatalogService_ListProducts_FiltersAndCounts(t *testing.T) {
	svc := newCatalogService(t)

	listing, err := svc.ListProducts(context.Background(), ListProductsInput{
		Categories: []string{"lighting"},
		Colors:     []string{"black"},
		InStock:    true,
		Sort:       domain.SortPriceAsc,
	})
	require.NoError(t, err)
	require.Len(t, listing.Items, 2)
	assert.Equal(t, "Designer Pendant Light", listing.Items[0].Name)
	assert.Equal(t, "Minimalist Floor Lamp", listing.Items[1].Name)
	assert.Equal(t, 3, listing.ActiveFilterCount)
}

func TestCatalogService_ListProducts_CustomPriceRangeCountsAsFilter(t *testing.T) {
	svc := newCatalogService(t)

	listing, err := svc.ListProducts(context.Background(), ListProductsInput{
		PriceRange: &domain.PriceRange{Min: 0, Max: 10000},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, listing.ActiveFilterCount)
	for _, p := range listing.Items {
		assert.LessOrEqual(t, p.Price, int64(10000))
	}
}

func TestCatalogService_ListProducts_InvalidSort(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.ListProducts(context.Background(), ListProductsInput{Sort: "cheapest"})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestCatalogService_ListProducts_InvertedPriceRange(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.ListProducts(context.Background(), ListProductsInput{
		PriceRange: &domain.PriceRange{Min: 500, Max: 100},
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestCatalogService_GetProduct_ByID(t *testing.T) {
	svc := newCatalogService(t)

	p, err := svc.GetProduct(context.Background(), "prod-3")
	require.NoError(t, err)
	assert.Equal(t, "Designer Pendant Light", p.Name)
}

func TestCatalogService_GetProduct_BySlugFallback(t *testing.T) {
	svc := newCatalogService(t)

	p, err := svc.GetProduct(context.Background(), "designer-pendant-light")
	require.NoError(t, err)
	assert.Equal(t, "prod-3", p.ID)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.GetProduct(context.Background(), "no-such-thing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCatalogService_GetFacets(t *testing.T) {
	svc := newCatalogService(t)

	facets, err := svc.GetFacets(context.Background())
	require.NoError(t, err)
	assert.Len(t, facets.Categories, 6)
	assert.Len(t, facets.Colors, 7)
	assert.Len(t, facets.Materials, 8)
	assert.Contains(t, facets.SortKeys, domain.SortNewest)
	assert.Equal(t, int64(150000), facets.PriceBounds.Max)
}
