package repository

import (
	"context"

	"herbwise/internal/domain/entity"
	"herbwise/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order lookup misses.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists the append-only per-user order history,
// most-recent-first.
type OrderRepository interface {
	// Insert prepends a new order to the user's history.
	Insert(ctx context.Context, userID uuid.UUID, order *entity.Order) error

	// FindByID retrieves one of the user's orders.
	FindByID(ctx context.Context, userID uuid.UUID, orderID string) (*entity.Order, error)

	// ListByUser returns the user's order history, most-recent-first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus overwrites the stored status of an order.
	UpdateStatus(ctx context.Context, userID uuid.UUID, orderID string, status entity.OrderStatus) error
}
