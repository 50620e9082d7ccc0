package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SettingsUsecase persists the free-form user settings document and the
// has-seen-intro flag.
type SettingsUsecase interface {
	// GetSettings returns the stored settings document, empty if none.
	GetSettings(ctx context.Context, userID uuid.UUID) (map[string]any, error)

	// SaveSettings replaces the stored settings document.
	SaveSettings(ctx context.Context, userID uuid.UUID, settings map[string]any) error

	// HasSeenIntro reports whether the user dismissed the intro screen.
	HasSeenIntro(ctx context.Context, userID uuid.UUID) (bool, error)

	// MarkIntroSeen records that the user dismissed the intro screen.
	MarkIntroSeen(ctx context.Context, userID uuid.UUID) error
}
