package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hellospace/storefront/internal/domain"
	"github.com/hellospace/storefront/internal/repository"
	"github.com/hellospace/storefront/pkg/apperr"
)

// WishlistEvents is the slice of the event producer the wishlist service
// publishes through.
type WishlistEvents interface {
	PublishWishlistUpdated(ctx context.Context, wishlist *domain.Wishlist) error
}

// WishlistService implements the saved-for-later business logic.
type WishlistService struct {
	repo     repository.WishlistRepository
	products repository.ProductRepository
	cart     *CartService
	events   WishlistEvents
	logger   *slog.Logger
}

// NewWishlistService creates a wishlist service.
func NewWishlistService(repo repository.WishlistRepository, products repository.ProductRepository, cart *CartService, events WishlistEvents, logger *slog.Logger) *WishlistService {
	return &WishlistService{
		repo:     repo,
		products: products,
		cart:     cart,
		events:   events,
		logger:   logger,
	}
}

// GetWishlist retrieves the user's wishlist, empty if none is stored.
func (s *WishlistService) GetWishlist(ctx context.Context, userID string) (*domain.Wishlist, error) {
	if userID == "" {
		return nil, apperr.InvalidInput("user id is required")
	}

	wishlist, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return s.emptyWishlist(userID), nil
		}
		return nil, fmt.Errorf("get wishlist: %w", err)
	}

	return wishlist, nil
}

// AddItem saves a product to the wishlist. Adding a product that is already
// saved is a no-op; the wishlist holds at most one entry per product.
func (s *WishlistService) AddItem(ctx context.Context, userID, productID string) (*domain.Wishlist, error) {
	if userID == "" {
		return nil, apperr.InvalidInput("user id is required")
	}
	if productID == "" {
		return nil, apperr.InvalidInput("product id is required")
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	wishlist, err := s.GetWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}

	if wishlist.Contains(product.ID) {
		return wishlist, nil
	}

	wishlist.Items = append(wishlist.Items, domain.WishlistItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		Slug:      product.Slug,
	})

	if err := s.saveAndPublish(ctx, wishlist); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "product saved to wishlist",
		slog.String("user_id", userID),
		slog.String("product_id", product.ID),
	)

	return wishlist, nil
}

// RemoveItem removes a product from the wishlist. Removing a product that is
// not saved leaves the wishlist unchanged.
func (s *WishlistService) RemoveItem(ctx context.Context, userID, productID string) (*domain.Wishlist, error) {
	if userID == "" {
		return nil, apperr.InvalidInput("user id is required")
	}
	if productID == "" {
		return nil, apperr.InvalidInput("product id is required")
	}

	wishlist, err := s.GetWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}

	i := wishlist.ItemIndex(productID)
	if i < 0 {
		return wishlist, nil
	}

	wishlist.Items = append(wishlist.Items[:i], wishlist.Items[i+1:]...)

	if err := s.saveAndPublish(ctx, wishlist); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "product removed from wishlist",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
	)

	return wishlist, nil
}

// Contains reports whether the product is saved in the user's wishlist.
func (s *WishlistService) Contains(ctx context.Context, userID, productID string) (bool, error) {
	if userID == "" {
		return false, apperr.InvalidInput("user id is required")
	}
	if productID == "" {
		return false, apperr.InvalidInput("product id is required")
	}

	wishlist, err := s.GetWishlist(ctx, userID)
	if err != nil {
		return false, err
	}

	return wishlist.Contains(productID), nil
}

// Clear removes the user's wishlist entirely.
func (s *WishlistService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return apperr.InvalidInput("user id is required")
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete wishlist: %w", err)
	}

	if err := s.events.PublishWishlistUpdated(ctx, s.emptyWishlist(userID)); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish wishlist.updated event",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "wishlist cleared", slog.String("user_id", userID))
	return nil
}

// MoveToCart moves a saved product into the cart with quantity one and
// removes it from the wishlist. Moving a product that is not saved fails with
// not found so the client can refresh its state.
func (s *WishlistService) MoveToCart(ctx context.Context, userID, productID string) (*domain.Cart, *domain.Wishlist, error) {
	if userID == "" {
		return nil, nil, apperr.InvalidInput("user id is required")
	}
	if productID == "" {
		return nil, nil, apperr.InvalidInput("product id is required")
	}

	wishlist, err := s.GetWishlist(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if !wishlist.Contains(productID) {
		return nil, nil, apperr.NotFound("wishlist item", productID)
	}

	cart, err := s.cart.AddItem(ctx, userID, AddItemInput{ProductID: productID, Quantity: 1})
	if err != nil {
		return nil, nil, err
	}

	wishlist, err = s.RemoveItem(ctx, userID, productID)
	if err != nil {
		return nil, nil, err
	}

	return cart, wishlist, nil
}

func (s *WishlistService) saveAndPublish(ctx context.Context, wishlist *domain.Wishlist) error {
	wishlist.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, wishlist); err != nil {
		return fmt.Errorf("save wishlist: %w", err)
	}

	if err := s.events.PublishWishlistUpdated(ctx, wishlist); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish wishlist.updated event",
			slog.String("user_id", wishlist.UserID),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

func (s *WishlistService) emptyWishlist(userID string) *domain.Wishlist {
	return &domain.Wishlist{
		UserID:    userID,
		Items:     []domain.WishlistItem{},
		UpdatedAt: time.Now().UTC(),
	}
}
