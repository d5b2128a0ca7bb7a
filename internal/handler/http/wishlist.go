package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hellospace/storefront/internal/domain"
	"github.com/hellospace/storefront/internal/service"
	"github.com/hellospace/storefront/pkg/httputil"
	"github.com/hellospace/storefront/pkg/middleware"
)

// WishlistHandler serves the wishlist endpoints.
type WishlistHandler struct {
	service *service.WishlistService
	logger  *slog.Logger
}

// NewWishlistHandler creates a wishlist handler.
func NewWishlistHandler(svc *service.WishlistService, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{service: svc, logger: logger}
}

type wishlistResponse struct {
	UserID    string                `json:"user_id"`
	Items     []domain.WishlistItem `json:"items"`
	ItemCount int                   `json:"item_count"`
}

type membershipResponse struct {
	ProductID string `json:"product_id"`
	Saved     bool   `json:"saved"`
}

type moveToCartResponse struct {
	Cart     cartResponse     `json:"cart"`
	Wishlist wishlistResponse `json:"wishlist"`
}

// GetWishlist handles GET /api/v1/wishlist.
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	wishlist, err := h.service.GetWishlist(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	writeWishlist(w, http.StatusOK, wishlist)
}

// AddItem handles POST /api/v1/wishlist/{productId}.
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	wishlist, err := h.service.AddItem(r.Context(), middleware.UserIDFromContext(r.Context()), chi.URLParam(r, "productId"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	writeWishlist(w, http.StatusOK, wishlist)
}

// RemoveItem handles DELETE /api/v1/wishlist/{productId}.
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	wishlist, err := h.service.RemoveItem(r.Context(), middleware.UserIDFromContext(r.Context()), chi.URLParam(r, "productId"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	writeWishlist(w, http.StatusOK, wishlist)
}

// Contains handles GET /api/v1/wishlist/{productId}.
func (h *WishlistHandler) Contains(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	saved, err := h.service.Contains(r.Context(), middleware.UserIDFromContext(r.Context()), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, membershipResponse{ProductID: productID, Saved: saved})
}

// Clear handles DELETE /api/v1/wishlist.
func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context(), middleware.UserIDFromContext(r.Context())); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveToCart handles POST /api/v1/wishlist/{productId}/move-to-cart.
func (h *WishlistHandler) MoveToCart(w http.ResponseWriter, r *http.Request) {
	cart, wishlist, err := h.service.MoveToCart(r.Context(), middleware.UserIDFromContext(r.Context()), chi.URLParam(r, "productId"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteData(w, http.StatusOK, moveToCartResponse{
		Cart: cartResponse{
			UserID:    cart.UserID,
			Items:     cart.Items,
			ItemCount: cart.ItemCount(),
			Subtotal:  cart.Subtotal(),
		},
		Wishlist: wishlistResponse{
			UserID:    wishlist.UserID,
			Items:     wishlist.Items,
			ItemCount: wishlist.ItemCount(),
		},
	})
}

func writeWishlist(w http.ResponseWriter, status int, wishlist *domain.Wishlist) {
	httputil.WriteData(w, status, wishlistResponse{
		UserID:    wishlist.UserID,
		Items:     wishlist.Items,
		ItemCount: wishlist.ItemCount(),
	})
}
