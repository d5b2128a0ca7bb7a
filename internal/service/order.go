package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hellospace/storefront/internal/domain"
	"github.com/hellospace/storefront/internal/repository"
	"github.com/hellospace/storefront/pkg/apperr"
	"github.com/hellospace/storefront/pkg/validate"
)

// Shipping pricing in cents.
const (
	flatShippingAmount    = 1500
	freeShippingThreshold = 50000
)

// OrderEvents is the slice of the event producer the order service publishes
// through.
type OrderEvents interface {
	PublishOrderPlaced(ctx context.Context, order *domain.Order) error
}

// CheckoutInput holds the parameters for placing an order.
type CheckoutInput struct {
	ShippingAddress ShippingAddressInput `json:"shipping_address" validate:"required"`
}

// ShippingAddressInput is the shipping destination for a checkout.
type ShippingAddressInput struct {
	FullName    string `json:"full_name" validate:"required"`
	AddressLine string `json:"address_line" validate:"required"`
	City        string `json:"city" validate:"required"`
	PostalCode  string `json:"postal_code" validate:"required"`
	Country     string `json:"country" validate:"required,len=2"`
	Phone       string `json:"phone"`
}

// OrderService implements checkout and order history.
type OrderService struct {
	repo   repository.OrderRepository
	cart   *CartService
	events OrderEvents
	logger *slog.Logger
}

// NewOrderService creates an order service.
func NewOrderService(repo repository.OrderRepository, cart *CartService, events OrderEvents, logger *slog.Logger) *OrderService {
	return &OrderService{
		repo:   repo,
		cart:   cart,
		events: events,
		logger: logger,
	}
}

// Checkout snapshots the user's cart into a pending order, clears the cart,
// and announces the order. An empty cart cannot be checked out.
func (s *OrderService) Checkout(ctx context.Context, userID string, input CheckoutInput) (*domain.Order, error) {
	if userID == "" {
		return nil, apperr.InvalidInput("user id is required")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	cart, err := s.cart.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperr.InvalidInput("cart is empty")
	}

	items := make([]domain.OrderItem, len(cart.Items))
	for i, line := range cart.Items {
		items[i] = domain.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		}
	}

	subtotal := cart.Subtotal()
	shipping := int64(flatShippingAmount)
	if subtotal >= freeShippingThreshold {
		shipping = 0
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:             uuid.New().String(),
		UserID:         userID,
		Status:         domain.OrderStatusPending,
		Items:          items,
		SubtotalAmount: subtotal,
		ShippingAmount: shipping,
		TotalAmount:    subtotal + shipping,
		ShippingAddress: domain.Address{
			FullName:    input.ShippingAddress.FullName,
			AddressLine: input.ShippingAddress.AddressLine,
			City:        input.ShippingAddress.City,
			PostalCode:  input.ShippingAddress.PostalCode,
			Country:     input.ShippingAddress.Country,
			Phone:       input.ShippingAddress.Phone,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// The order is placed at this point; a failed cart cleanup must not
	// undo the checkout.
	if err := s.cart.ClearCart(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear cart after checkout",
			slog.String("user_id", userID),
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.events.PublishOrderPlaced(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order.placed event",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID),
		slog.String("user_id", userID),
		slog.Int64("total_amount", order.TotalAmount),
	)

	return order, nil
}

// AdvanceStatus moves an order along the fulfillment flow. Staff only; the
// transition table rejects moves such as shipping a canceled order.
func (s *OrderService) AdvanceStatus(ctx context.Context, role, orderID, status string) (*domain.Order, error) {
	if role != domain.RoleAdmin {
		return nil, apperr.Forbidden("order status updates require staff access")
	}
	if orderID == "" {
		return nil, apperr.InvalidInput("order id is required")
	}
	if !domain.IsValidOrderStatus(status) {
		return nil, apperr.InvalidInput(fmt.Sprintf("unknown order status %q", status))
	}

	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanTransitionTo(status) {
		return nil, apperr.Conflict(fmt.Sprintf("order cannot move from %s to %s", order.Status, status))
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	order.Status = status
	order.UpdatedAt = time.Now().UTC()

	s.logger.InfoContext(ctx, "order status updated",
		slog.String("order_id", orderID),
		slog.String("status", status),
	)

	return order, nil
}

// GetOrder retrieves one of the user's orders. Another user's order is
// reported as not found rather than forbidden so order ids cannot be probed.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	if userID == "" {
		return nil, apperr.InvalidInput("user id is required")
	}
	if orderID == "" {
		return nil, apperr.InvalidInput("order id is required")
	}

	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, apperr.NotFound("order", orderID)
	}

	return order, nil
}

// ListOrders returns the user's order history, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userID string, page, perPage int) ([]domain.Order, int, error) {
	if userID == "" {
		return nil, 0, apperr.InvalidInput("user id is required")
	}

	orders, total, err := s.repo.List(ctx, repository.OrderFilter{
		UserID:  userID,
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	return orders, total, nil
}
