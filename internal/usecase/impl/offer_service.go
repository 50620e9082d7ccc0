// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"math"
	"strconv"
	"time"

	"herbwise/internal/domain/entity"
	"herbwise/internal/domain/repository"
	"herbwise/internal/errors"
	"herbwise/internal/usecase"
)

type offerService struct {
	offerRepo repository.OfferRepository
	now       func() time.Time
}

// NewOfferService creates a new offer engine instance.
func NewOfferService(offerRepo repository.OfferRepository) usecase.OfferUsecase {
	return &offerService{
		offerRepo: offerRepo,
		now:       time.Now,
	}
}

// ListOffers returns every seeded offer regardless of validity.
func (s *offerService) ListOffers(ctx context.Context) ([]*entity.Offer, error) {
	offers, err := s.offerRepo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list offers")
	}

	return offers, nil
}

// ActiveOffers returns the offers redeemable right now. The view is derived
// fresh on every call since validity depends on the current time.
func (s *offerService) ActiveOffers(ctx context.Context) ([]*entity.Offer, error) {
	offers, err := s.offerRepo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list offers")
	}

	now := s.now()
	active := make([]*entity.Offer, 0, len(offers))
	for _, offer := range offers {
		if offer.IsActive && offer.WithinWindow(now) && !offer.UsageExhausted() {
			active = append(active, offer)
		}
	}

	return active, nil
}

// ValidateOffer checks a code against the order total. Checks run in a fixed
// order and the first failure determines the user-facing message; an invalid
// code is a result, not an error.
func (s *offerService) ValidateOffer(ctx context.Context, code string, orderTotal float64) (*usecase.OfferValidation, error) {
	offer, err := s.offerRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return &usecase.OfferValidation{Valid: false, Message: "Invalid offer code"}, nil
		}

		return nil, errors.Wrap(err, "find offer by code")
	}

	now := s.now()

	if !offer.IsActive {
		return &usecase.OfferValidation{Valid: false, Message: "This offer is no longer active"}, nil
	}

	if now.Before(offer.StartDate) {
		return &usecase.OfferValidation{Valid: false, Message: "This offer is not yet active"}, nil
	}

	if now.After(offer.EndDate) {
		return &usecase.OfferValidation{Valid: false, Message: "This offer has expired"}, nil
	}

	if offer.UsageExhausted() {
		return &usecase.OfferValidation{Valid: false, Message: "This offer has reached its usage limit"}, nil
	}

	if offer.MinOrderAmount > 0 && orderTotal < offer.MinOrderAmount {
		return &usecase.OfferValidation{
			Valid:   false,
			Message: "Minimum order amount of $" + formatAmount(offer.MinOrderAmount) + " required for this offer",
		}, nil
	}

	return &usecase.OfferValidation{Valid: true, Offer: offer, Message: "Offer applied successfully!"}, nil
}

// DiscountAmount returns the discount for a valid code, 0 otherwise.
func (s *offerService) DiscountAmount(ctx context.Context, code string, orderTotal float64) (float64, error) {
	validation, err := s.ValidateOffer(ctx, code, orderTotal)
	if err != nil {
		return 0, err
	}
	if !validation.Valid || validation.Offer == nil {
		return 0, nil
	}

	offer := validation.Offer
	if offer.DiscountType == entity.DiscountPercentage {
		// Half-up rounding to two decimals.
		return math.Round(orderTotal*offer.DiscountValue/100*100) / 100, nil
	}

	return math.Min(offer.DiscountValue, orderTotal), nil
}

// ApplyOffer increments the offer's usage count by exactly one. Unknown codes
// are a no-op; the caller is responsible for invoking this at most once per
// successfully placed order.
func (s *offerService) ApplyOffer(ctx context.Context, code string) error {
	offer, err := s.offerRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil
		}

		return errors.Wrap(err, "find offer by code")
	}

	return errors.Wrap(s.offerRepo.IncrementUsage(ctx, offer.ID), "increment offer usage")
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
