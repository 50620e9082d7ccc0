// Package kv implements repositories on top of the durable key-value store.
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

const cartKeyPrefix = "herbwise-cart:"

// CartRepository persists cart snapshots as JSON documents in the key-value
// store, one key per user.
type CartRepository struct {
	store  repository.KVStore
	logger *slog.Logger
}

// NewCartRepository creates the store-backed cart repository.
func NewCartRepository(store repository.KVStore, logger *slog.Logger) repository.CartRepository {
	return &CartRepository{store: store, logger: logger}
}

// Items loads the current cart snapshot. Malformed stored data is logged and
// treated as an empty cart.
func (r *CartRepository) Items(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	raw, ok, err := r.store.Get(ctx, cartKeyPrefix+userID.String())
	if err != nil {
		return nil, errors.Wrap(err, "load cart snapshot")
	}
	if !ok {
		return nil, nil
	}

	var items []entity.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		r.logger.Error("Corrupt cart snapshot, treating as empty",
			slog.String("userID", userID.String()),
			slog.Any("error", err))

		return nil, nil
	}

	return items, nil
}

// Save replaces the stored cart snapshot.
func (r *CartRepository) Save(ctx context.Context, userID uuid.UUID, items []entity.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "marshal cart snapshot")
	}

	return errors.Wrap(r.store.Set(ctx, cartKeyPrefix+userID.String(), string(raw)), "save cart snapshot")
}

// Clear removes the stored cart.
func (r *CartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	return errors.Wrap(r.store.Delete(ctx, cartKeyPrefix+userID.String()), "clear cart snapshot")
}
