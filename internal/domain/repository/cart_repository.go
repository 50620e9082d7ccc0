package repository

import (
	"context"

	"herbwise/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository persists the per-user cart snapshot. Implementations write
// the full snapshot on every mutation and must treat malformed stored data as
// an empty cart rather than failing.
type CartRepository interface {
	// Items loads the current cart snapshot for the user.
	Items(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error)

	// Save replaces the stored cart snapshot for the user.
	Save(ctx context.Context, userID uuid.UUID, items []entity.CartItem) error

	// Clear removes the stored cart for the user.
	Clear(ctx context.Context, userID uuid.UUID) error
}
