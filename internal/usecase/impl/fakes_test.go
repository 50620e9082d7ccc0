package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"herbwise/internal/domain/entity"
	"herbwise/internal/domain/repository"
	"herbwise/internal/domain/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeOfferRepo serves a fixed offer slice without the seeded repository's
// weekend-window refresh, so tests control windows directly.
type fakeOfferRepo struct {
	offers []*entity.Offer
}

func (f *fakeOfferRepo) All(_ context.Context) ([]*entity.Offer, error) {
	return f.offers, nil
}

func (f *fakeOfferRepo) FindByCode(_ context.Context, code string) (*entity.Offer, error) {
	for _, offer := range f.offers {
		if strings.EqualFold(offer.Code, code) {
			return offer, nil
		}
	}

	return nil, repository.ErrOfferNotFound
}

func (f *fakeOfferRepo) IncrementUsage(_ context.Context, id string) error {
	for _, offer := range f.offers {
		if offer.ID == id {
			offer.UsedCount++

			return nil
		}
	}

	return repository.ErrOfferNotFound
}

// fakeScheduler collects scheduled tasks and runs them only when flushed.
type fakeScheduler struct {
	tasks []func()
}

func (s *fakeScheduler) Schedule(_ time.Duration, fn func()) service.CancelFunc {
	s.tasks = append(s.tasks, fn)

	return func() {}
}

// Flush runs every pending task in scheduling order.
func (s *fakeScheduler) Flush() {
	tasks := s.tasks
	s.tasks = nil
	for _, fn := range tasks {
		fn()
	}
}

// fakeCompletion replays a scripted sequence of results; the last entry
// repeats once the script is exhausted.
type fakeCompletion struct {
	script []completionResult
	calls  int
}

type completionResult struct {
	text string
	err  error
}

func (f *fakeCompletion) Complete(_ context.Context, _ string) (string, error) {
	idx := f.calls
	if idx >= len(f.script) {
		idx = len(f.script) - 1
	}
	f.calls++

	result := f.script[idx]

	return result.text, result.err
}
