package usecase

import (
	"context"

	"herbwise/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput carries the checkout metadata for order placement. The
// caller computes tax and shipping; only the discounted merchandise total is
// stored on the order.
type CreateOrderInput struct {
	ShippingAddress entity.ShippingAddress
	PaymentMethod   string
	DiscountAmount  float64
	OfferCode       string
}

// OrderUsecase converts cart snapshots into orders and drives the order
// status lifecycle.
type OrderUsecase interface {
	// CreateOrder snapshots the user's cart into a new pending order, clears
	// the cart, burns the applied offer's usage once, and schedules the
	// automatic pending-to-confirmed transition.
	CreateOrder(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*entity.Order, error)

	// UpdateOrderStatus moves an order to a new status, rejecting illegal
	// lifecycle transitions.
	UpdateOrderStatus(ctx context.Context, userID uuid.UUID, orderID string, status entity.OrderStatus) error

	// GetOrder retrieves one of the user's orders.
	GetOrder(ctx context.Context, userID uuid.UUID, orderID string) (*entity.Order, error)

	// ListOrders returns the user's order history, most-recent-first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
