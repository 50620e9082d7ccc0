package kv

import (
	"context"
	"encoding/json"
	"log/slog"

	"herbwise/internal/domain/entity"
	"herbwise/internal/domain/repository"
	"herbwise/internal/errors"

	"github.com/google/uuid"
)

const ordersKeyPrefix = "herbwise-orders:"

// OrderRepository persists the per-user order history as a JSON document,
// most-recent-first. Timestamps round-trip through RFC 3339 strings, so date
// arithmetic keeps working after a reload.
type OrderRepository struct {
	store  repository.KVStore
	logger *slog.Logger
}

// NewOrderRepository creates the store-backed order repository.
func NewOrderRepository(store repository.KVStore, logger *slog.Logger) repository.OrderRepository {
	return &OrderRepository{store: store, logger: logger}
}

// Insert prepends a new order to the user's history.
func (r *OrderRepository) Insert(ctx context.Context, userID uuid.UUID, order *entity.Order) error {
	orders, err := r.load(ctx, userID)
	if err != nil {
		return err
	}

	orders = append([]*entity.Order{order}, orders...)

	return r.save(ctx, userID, orders)
}

// FindByID retrieves one of the user's orders.
func (r *OrderRepository) FindByID(ctx context.Context, userID uuid.UUID, orderID string) (*entity.Order, error) {
	orders, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		if order.ID == orderID {
			return order, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

// ListByUser returns the user's order history, most-recent-first.
func (r *OrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return r.load(ctx, userID)
}

// UpdateStatus overwrites the stored status of an order.
func (r *OrderRepository) UpdateStatus(ctx context.Context, userID uuid.UUID, orderID string, status entity.OrderStatus) error {
	orders, err := r.load(ctx, userID)
	if err != nil {
		return err
	}

	for _, order := range orders {
		if order.ID == orderID {
			order.Status = status

			return r.save(ctx, userID, orders)
		}
	}

	return repository.ErrOrderNotFound
}

// load reads the history document. Malformed stored data is logged and
// treated as an empty history.
func (r *OrderRepository) load(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	raw, ok, err := r.store.Get(ctx, ordersKeyPrefix+userID.String())
	if err != nil {
		return nil, errors.Wrap(err, "load order history")
	}
	if !ok {
		return nil, nil
	}

	var orders []*entity.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		r.logger.Error("Corrupt order history, treating as empty",
			slog.String("userID", userID.String()),
			slog.Any("error", err))

		return nil, nil
	}

	return orders, nil
}

func (r *OrderRepository) save(ctx context.Context, userID uuid.UUID, orders []*entity.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return errors.Wrap(err, "marshal order history")
	}

	return errors.Wrap(r.store.Set(ctx, ordersKeyPrefix+userID.String(), string(raw)), "save order history")
}
