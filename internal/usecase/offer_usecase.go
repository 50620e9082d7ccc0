package usecase

import (
	"context"

	"herbwise/internal/domain/entity"
)

// OfferValidation is the outcome of checking a code against an order total.
// Message is user-facing; an invalid result is not an error.
type OfferValidation struct {
	Valid   bool          `json:"valid"`
	Offer   *entity.Offer `json:"offer,omitempty"`
	Message string        `json:"message"`
}

// OfferUsecase validates promo codes and computes discount amounts.
type OfferUsecase interface {
	// ListOffers returns every seeded offer regardless of validity.
	ListOffers(ctx context.Context) ([]*entity.Offer, error)

	// ActiveOffers returns the offers redeemable right now. The view is
	// recomputed on every call since validity depends on the current time.
	ActiveOffers(ctx context.Context) ([]*entity.Offer, error)

	// ValidateOffer checks a code against the order total. Checks run in a
	// fixed order and the first failure determines the message.
	ValidateOffer(ctx context.Context, code string, orderTotal float64) (*OfferValidation, error)

	// DiscountAmount returns the discount for a valid code, 0 otherwise.
	// Percentage discounts are rounded half-up to two decimals; fixed
	// discounts never exceed the order total.
	DiscountAmount(ctx context.Context, code string, orderTotal float64) (float64, error)

	// ApplyOffer increments the offer's usage count by exactly one. It must
	// be invoked at most once per successfully placed order. Unknown codes
	// are a no-op.
	ApplyOffer(ctx context.Context, code string) error
}
