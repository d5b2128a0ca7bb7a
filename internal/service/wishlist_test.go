package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hellospace/storefront/internal/domain"
	"github.com/hellospace/storefront/pkg/apperr"
)

func newWishlistService(t *testing.T, wishRepo *mockWishlistRepository, cartRepo *mockCartRepository, events *stubEvents) *WishlistService {
	t.Helper()
	catalog := testCatalog(t)
	cart := NewCartService(cartRepo, catalog, events, testLogger())
	return NewWishlistService(wishRepo, catalog, cart, events, testLogger())
}

func wishlistWithVase(userID string) *domain.Wishlist {
	return &domain.Wishlist{
		UserID: userID,
		Items: []domain.WishlistItem{
			{ProductID: "prod-4", Name: "Handcrafted Ceramic Vase", Price: 6800, Slug: "handcrafted-ceramic-vase"},
		},
		UpdatedAt: time.Now().UTC(),
	}
}

func TestWishlistService_GetWishlist_EmptyWhenMissing(t *testing.T) {
	repo := new(mockWishlistRepository)
	svc := newWishlistService(t, repo, new(mockCartRepository), &stubEvents{})
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(nil, apperr.NotFound("wishlist", "user-1"))

	w, err := svc.GetWishlist(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, w.Items)
}

func TestWishlistService_AddItem(t *testing.T) {
	repo := new(mockWishlistRepository)
	events := &stubEvents{}
	svc := newWishlistService(t, repo, new(mockCartRepository), events)
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(nil, apperr.NotFound("wishlist", "user-1"))
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Wishlist")).Return(nil)

	w, err := svc.AddItem(ctx, "user-1", "prod-7")
	require.NoError(t, err)
	require.Len(t, w.Items, 1)
	assert.Equal(t, "Minimalist Floor Lamp", w.Items[0].Name)
	assert.Equal(t, "minimalist-floor-lamp", w.Items[0].Slug)
	assert.Equal(t, 1, events.wishlistUpdated)
}

func TestWishlistService_AddItem_IdempotentWhenAlreadySaved(t *testing.T) {
	repo := new(mockWishlistRepository)
	events := &stubEvents{}
	svc := newWishlistService(t, repo, new(mockCartRepository), events)
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(wishlistWithVase("user-1"), nil)

	w, err := svc.AddItem(ctx, "user-1", "prod-4")
	require.NoError(t, err)
	assert.Len(t, w.Items, 1)
	assert.Zero(t, events.wishlistUpdated)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestWishlistService_AddItem_UnknownProduct(t *testing.T) {
	svc := newWishlistService(t, new(mockWishlistRepository), new(mockCartRepository), &stubEvents{})

	_, err := svc.AddItem(context.Background(), "user-1", "prod-404")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestWishlistService_RemoveItem(t *testing.T) {
	repo := new(mockWishlistRepository)
	svc := newWishlistService(t, repo, new(mockCartRepository), &stubEvents{})
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(wishlistWithVase("user-1"), nil)
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Wishlist")).Return(nil)

	w, err := svc.RemoveItem(ctx, "user-1", "prod-4")
	require.NoError(t, err)
	assert.Empty(t, w.Items)
}

func TestWishlistService_RemoveItem_UnknownProductIsNoOp(t *testing.T) {
	repo := new(mockWishlistRepository)
	svc := newWishlistService(t, repo, new(mockCartRepository), &stubEvents{})
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(wishlistWithVase("user-1"), nil)

	w, err := svc.RemoveItem(ctx, "user-1", "prod-9")
	require.NoError(t, err)
	assert.Len(t, w.Items, 1)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestWishlistService_Contains(t *testing.T) {
	repo := new(mockWishlistRepository)
	svc := newWishlistService(t, repo, new(mockCartRepository), &stubEvents{})
	ctx := context.Background()

	repo.On("Get", ctx, "user-1").Return(wishlistWithVase("user-1"), nil)

	saved, err := svc.Contains(ctx, "user-1", "prod-4")
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = svc.Contains(ctx, "user-1", "prod-1")
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestWishlistService_Clear(t *testing.T) {
	repo := new(mockWishlistRepository)
	events := &stubEvents{}
	svc := newWishlistService(t, repo, new(mockCartRepository), events)
	ctx := context.Background()

	repo.On("Delete", ctx, "user-1").Return(nil)

	require.NoError(t, svc.Clear(ctx, "user-1"))
	assert.Equal(t, 1, events.wishlistUpdated)
}

func TestWishlistService_MoveToCart(t *testing.T) {
	wishRepo := new(mockWishlistRepository)
	cartRepo := new(mockCartRepository)
	events := &stubEvents{}
	svc := newWishlistService(t, wishRepo, cartRepo, events)
	ctx := context.Background()

	wishRepo.On("Get", ctx, "user-1").Return(wishlistWithVase("user-1"), nil)
	wishRepo.On("Save", ctx, mock.AnythingOfType("*domain.Wishlist")).Return(nil)
	cartRepo.On("Get", ctx, "user-1").Return(nil, apperr.NotFound("cart", "user-1"))
	cartRepo.On("Save", ctx, mock.AnythingOfType("*domain.Cart")).Return(nil)

	cart, wishlist, err := svc.MoveToCart(ctx, "user-1", "prod-4")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "prod-4", cart.Items[0].ProductID)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Empty(t, wishlist.Items)
	assert.Equal(t, 1, events.cartUpdated)
	assert.Equal(t, 1, events.wishlistUpdated)
}

func TestWishlistService_MoveToCart_NotSaved(t *testing.T) {
	wishRepo := new(mockWishlistRepository)
	svc := newWishlistService(t, wishRepo, new(mockCartRepository), &stubEvents{})
	ctx := context.Background()

	wishRepo.On("Get", ctx, "user-1").Return(wishlistWithVase("user-1"), nil)

	_, _, err := svc.MoveToCart(ctx, "user-1", "prod-1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
