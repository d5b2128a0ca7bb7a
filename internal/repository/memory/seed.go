package memory

import "github.com/hellospace/storefront/internal/domain"

// sampleProducts is the Hello Space interior collection. Prices are in cents.
func sampleProducts() []domain.Product {
	orig := func(v int64) *int64 { return &v }
	return []domain.Product{
		{
			ID:            "prod-1",
			Name:          "Modern Lounge Chair",
			Price:         89500,
			OriginalPrice: orig(109500),
			Category:      "Seating",
			CategoryID:    "seating",
			ImageURL:      "/images/products/modern-lounge-chair.jpg",
			Colors:        []string{"natural", "gray"},
			Materials:     []string{"wood", "fabric"},
			InStock:       true,
			OnSale:        true,
		},
		{
			ID:         "prod-2",
			Name:       "Sustainable Coffee Table",
			Price:      64500,
			Category:   "Tables",
			CategoryID: "tables",
			ImageURL:   "/images/products/sustainable-coffee-table.jpg",
			Colors:     []string{"natural"},
			Materials:  []string{"wood"},
			InStock:    true,
			IsNew:      true,
		},
		{
			ID:         "prod-3",
			Name:       "Designer Pendant Light",
			Price:      32500,
			Category:   "Lighting",
			CategoryID: "lighting",
			ImageURL:   "/images/products/designer-pendant-light.jpg",
			Colors:     []string{"black", "brass"},
			Materials:  []string{"metal", "glass"},
			InStock:    true,
		},
		{
			ID:            "prod-4",
			Name:          "Handcrafted Ceramic Vase",
			Price:         6800,
			OriginalPrice: orig(8500),
			Category:      "Decor",
			CategoryID:    "decor",
			ImageURL:      "/images/products/handcrafted-ceramic-vase.jpg",
			Colors:        []string{"white", "terracotta"},
			Materials:     []string{"ceramic"},
			InStock:       true,
			OnSale:        true,
		},
		{
			ID:         "prod-5",
			Name:       "Natural Linen Throw Pillow",
			Price:      4200,
			Category:   "Textiles",
			CategoryID: "textiles",
			ImageURL:   "/images/products/natural-linen-throw-pillow.jpg",
			Colors:     []string{"natural", "gray", "terracotta"},
			Materials:  []string{"linen"},
			InStock:    true,
		},
		{
			ID:         "prod-6",
			Name:       "Solid Wood Dining Table",
			Price:      125000,
			Category:   "Tables",
			CategoryID: "tables",
			ImageURL:   "/images/products/solid-wood-dining-table.jpg",
			Colors:     []string{"natural", "walnut"},
			Materials:  []string{"wood"},
			InStock:    false,
		},
		{
			ID:         "prod-7",
			Name:       "Minimalist Floor Lamp",
			Price:      38500,
			Category:   "Lighting",
			CategoryID: "lighting",
			ImageURL:   "/images/products/minimalist-floor-lamp.jpg",
			Colors:     []string{"black", "brass"},
			Materials:  []string{"metal"},
			InStock:    true,
			IsNew:      true,
		},
		{
			ID:         "prod-8",
			Name:       "Organic Cotton Throw Blanket",
			Price:      9500,
			Category:   "Textiles",
			CategoryID: "textiles",
			ImageURL:   "/images/products/organic-cotton-throw-blanket.jpg",
			Colors:     []string{"natural", "gray", "terracotta"},
			Materials:  []string{"cotton"},
			InStock:    true,
		},
		{
			ID:         "prod-9",
			Name:       "Handwoven Seagrass Basket",
			Price:      3800,
			Category:   "Storage",
			CategoryID: "storage",
			ImageURL:   "/images/products/handwoven-seagrass-basket.jpg",
			Colors:     []string{"natural"},
			Materials:  []string{"seagrass"},
			InStock:    true,
		},
	}
}
