package repository

import (
	"context"

	"herbwise/internal/domain/entity"
	"herbwise/internal/errors"
)

// ErrOfferNotFound is returned when no offer matches a code.
var ErrOfferNotFound = errors.New("offer not found")

// OfferRepository owns the set of promotional offers. Offers are seeded at
// process start and never deleted; only their usage counters change.
type OfferRepository interface {
	// All returns every offer regardless of validity.
	All(ctx context.Context) ([]*entity.Offer, error)

	// FindByCode retrieves an offer by case-insensitive code match.
	FindByCode(ctx context.Context, code string) (*entity.Offer, error)

	// IncrementUsage bumps the offer's used count by exactly one.
	IncrementUsage(ctx context.Context, id string) error
}
