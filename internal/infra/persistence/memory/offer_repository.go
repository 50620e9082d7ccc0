// Package memory provides in-memory repositories seeded at process start.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"herbwise/internal/domain/entity"
	"herbwise/internal/domain/repository"
)

// OfferRepository holds the seeded promotional offers. Offers are never
// deleted; only their usage counters change. The weekend offer's activation
// window is recomputed from the current time on every read so it stays
// correct across weekend boundaries.
type OfferRepository struct {
	mu     sync.RWMutex
	offers []*entity.Offer
	now    func() time.Time
}

// NewOfferRepository seeds the default offer set relative to the current time.
func NewOfferRepository() repository.OfferRepository {
	return newOfferRepositoryAt(time.Now)
}

func newOfferRepositoryAt(now func() time.Time) *OfferRepository {
	return &OfferRepository{
		offers: SeedOffers(now()),
		now:    now,
	}
}

// All returns a copy of every offer regardless of validity.
func (r *OfferRepository) All(_ context.Context) ([]*entity.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.refreshWeekendWindow()

	offers := make([]*entity.Offer, 0, len(r.offers))
	for _, offer := range r.offers {
		copied := *offer
		offers = append(offers, &copied)
	}

	return offers, nil
}

// FindByCode retrieves an offer by case-insensitive code match.
func (r *OfferRepository) FindByCode(_ context.Context, code string) (*entity.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.refreshWeekendWindow()

	for _, offer := range r.offers {
		if strings.EqualFold(offer.Code, code) {
			copied := *offer

			return &copied, nil
		}
	}

	return nil, repository.ErrOfferNotFound
}

// IncrementUsage bumps the offer's used count by exactly one.
func (r *OfferRepository) IncrementUsage(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, offer := range r.offers {
		if offer.ID == id {
			offer.UsedCount++

			return nil
		}
	}

	return repository.ErrOfferNotFound
}

// refreshWeekendWindow re-derives the weekend offer's window from "now".
// Callers must hold the write lock.
func (r *OfferRepository) refreshWeekendWindow() {
	now := r.now()
	for _, offer := range r.offers {
		if offer.ID != weekendOfferID {
			continue
		}
		offer.StartDate, offer.EndDate = WeekendWindow(now)
	}
}
