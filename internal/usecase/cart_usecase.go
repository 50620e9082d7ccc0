package usecase

import (
	"context"

	"herbwise/internal/domain/entity"

	"github.com/google/uuid"
)

// CartSummary bundles the cart snapshot with its derived totals.
type CartSummary struct {
	Items      []entity.CartItem `json:"items"`
	Total      float64           `json:"total"`
	ItemsCount int               `json:"items_count"`
}

// CartUsecase owns the in-progress line items of a user's cart. All
// operations persist the updated snapshot to the durable store.
type CartUsecase interface {
	// AddToCart adds quantity units of the plant in the chosen form. The unit
	// price is parsed from the plant's cost string at add-time. Adding a
	// (plant, form) pair already in the cart increments the existing line's
	// quantity instead of creating a new one.
	AddToCart(ctx context.Context, userID uuid.UUID, plantID string, form entity.PlantForm, quantity int) (*entity.CartItem, error)

	// RemoveFromCart removes the matching line. Removing an absent line is a
	// no-op.
	RemoveFromCart(ctx context.Context, userID uuid.UUID, itemID string) error

	// UpdateQuantity replaces a line's quantity in place; a quantity of zero
	// or below removes the line.
	UpdateQuantity(ctx context.Context, userID uuid.UUID, itemID string, quantity int) error

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, userID uuid.UUID) error

	// GetCart returns the current snapshot with totals.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartSummary, error)
}
