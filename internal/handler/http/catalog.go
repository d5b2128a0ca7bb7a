package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hellospace/storefront/internal/domain"
	"github.com/hellospace/storefront/internal/service"
	"github.com/hellospace/storefront/pkg/apperr"
	"github.com/hellospace/storefront/pkg/httputil"
)

// CatalogHandler serves the product listing and facet endpoints.
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(svc *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{service: svc, logger: logger}
}

// ListProducts handles GET /api/v1/products.
//
// Query parameters: q, category, color, material (comma-separated or
// repeated), price_min, price_max (cents), in_stock, on_sale, sort.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	input, err := parseListInput(r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	listing, err := h.service.ListProducts(r.Context(), *input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, http.StatusOK, listing)
}

// GetProduct handles GET /api/v1/products/{idOrSlug}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "idOrSlug"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, product)
}

// GetFacets handles GET /api/v1/products/facets.
func (h *CatalogHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.service.GetFacets(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, facets)
}

func parseListInput(r *http.Request) (*service.ListProductsInput, error) {
	q := r.URL.Query()

	input := &service.ListProductsInput{
		Query:      strings.TrimSpace(q.Get("q")),
		Categories: multiValue(q["category"]),
		Colors:     multiValue(q["color"]),
		Materials:  multiValue(q["material"]),
		Sort:       q.Get("sort"),
	}

	var err error
	if input.InStock, err = boolParam(q.Get("in_stock")); err != nil {
		return nil, apperr.InvalidInput("in_stock must be a boolean")
	}
	if input.OnSale, err = boolParam(q.Get("on_sale")); err != nil {
		return nil, apperr.InvalidInput("on_sale must be a boolean")
	}

	minStr, maxStr := q.Get("price_min"), q.Get("price_max")
	if minStr != "" || maxStr != "" {
		if minStr == "" || maxStr == "" {
			return nil, apperr.InvalidInput("price_min and price_max must be provided together")
		}
		min, err := strconv.ParseInt(minStr, 10, 64)
		if err != nil || min < 0 {
			return nil, apperr.InvalidInput("price_min must be a non-negative integer")
		}
		max, err := strconv.ParseInt(maxStr, 10, 64)
		if err != nil || max < 0 {
			return nil, apperr.InvalidInput("price_max must be a non-negative integer")
		}
		input.PriceRange = &domain.PriceRange{Min: min, Max: max}
	}

	return input, nil
}

// multiValue splits repeated and comma-separated parameter values.
func multiValue(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func boolParam(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}
