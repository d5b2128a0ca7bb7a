package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellospace/storefront/internal/domain"
	"github.com/hellospace/storefront/pkg/apperr"
)

func setupCartRepo(t *testing.T) (*CartRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCartRepository(client, 24*time.Hour), mr
}

func testCart() *domain.Cart {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.Cart{
		UserID: "user-001",
		Items: []domain.CartItem{
			{ProductID: "prod-1", Name: "Modern Lounge Chair", Price: 89500, Quantity: 2},
			{ProductID: "prod-5", Name: "Natural Linen Throw Pillow", Price: 4200, Quantity: 1},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCartRepository_SaveAndGet(t *testing.T) {
	repo, _ := setupCartRepo(t)
	ctx := context.Background()

	cart := testCart()
	require.NoError(t, repo.Save(ctx, cart))

	got, err := repo.Get(ctx, cart.UserID)
	require.NoError(t, err)
	assert.Equal(t, cart.UserID, got.UserID)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "prod-1", got.Items[0].ProductID)
	assert.Equal(t, int64(89500), got.Items[0].Price)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, int64(191600), got.Subtotal())
}

func TestCartRepository_Get_NotFound(t *testing.T) {
	repo, _ := setupCartRepo(t)

	_, err := repo.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCartRepository_Get_CorruptDocumentIsDiscarded(t *testing.T) {
	repo, mr := setupCartRepo(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("cart:user-001", "{not json"))

	_, err := repo.Get(ctx, "user-001")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// The broken document is gone so the next save starts clean.
	assert.False(t, mr.Exists("cart:user-001"))
}

func TestCartRepository_Save_ReplacesExisting(t *testing.T) {
	repo, _ := setupCartRepo(t)
	ctx := context.Background()

	cart := testCart()
	require.NoError(t, repo.Save(ctx, cart))

	cart.Items = cart.Items[:1]
	require.NoError(t, repo.Save(ctx, cart))

	got, err := repo.Get(ctx, cart.UserID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}

func TestCartRepository_Save_AppliesTTL(t *testing.T) {
	repo, mr := setupCartRepo(t)

	require.NoError(t, repo.Save(context.Background(), testCart()))
	assert.Greater(t, mr.TTL("cart:user-001"), time.Duration(0))
}

func TestCartRepository_Delete(t *testing.T) {
	repo, mr := setupCartRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testCart()))
	require.NoError(t, repo.Delete(ctx, "user-001"))

	assert.False(t, mr.Exists("cart:user-001"))

	_, err := repo.Get(ctx, "user-001")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCartRepository_Delete_MissingIsNoError(t *testing.T) {
	repo, _ := setupCartRepo(t)
	assert.NoError(t, repo.Delete(context.Background(), "nobody"))
}

func TestCartRepository_RoundTripPreservesDocument(t *testing.T) {
	repo, mr := setupCartRepo(t)
	ctx := context.Background()

	cart := testCart()
	require.NoError(t, repo.Save(ctx, cart))

	raw, err := mr.Get("cart:" + cart.UserID)
	require.NoError(t, err)

	var stored domain.Cart
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, cart.Items, stored.Items)
	assert.True(t, cart.UpdatedAt.Equal(stored.UpdatedAt))
}
