package repository

import (
	"context"

	"github.com/hellospace/storefront/internal/domain"
)

// CartRepository persists carts keyed by user ID.
type CartRepository interface {
	// Get retrieves a cart by user ID. Returns apperr.ErrNotFound when no
	// cart exists or the stored document is unreadable.
	Get(ctx context.Context, userID string) (*domain.Cart, error)

	// Save persists a cart, replacing any existing cart for the user.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes the user's cart. Deleting a missing cart is not an error.
	Delete(ctx context.Context, userID string) error
}

// WishlistRepository persists wishlists keyed by user ID.
type WishlistRepository interface {
	Get(ctx context.Context, userID string) (*domain.Wishlist, error)
	Save(ctx context.Context, wishlist *domain.Wishlist) error
	Delete(ctx context.Context, userID string) error
}

// UserRepository persists storefront accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
}

// ProductRepository reads the catalog. The catalog is immutable at runtime, so
// there are no write operations.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)

	// PriceBounds returns the catalog-wide price range used as the default
	// for price filtering.
	PriceBounds(ctx context.Context) (domain.PriceRange, error)

	Categories(ctx context.Context) ([]domain.FacetOption, error)
	Colors(ctx context.Context) ([]domain.FacetOption, error)
	Materials(ctx context.Context) ([]domain.FacetOption, error)
}

// OrderFilter narrows order listings.
type OrderFilter struct {
	UserID  string
	Page    int
	PerPage int
}

// OrderRepository persists orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, int, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
