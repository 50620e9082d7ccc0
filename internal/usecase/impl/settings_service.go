package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"herbwise/internal/domain/repository"
	"herbwise/internal/errors"
	"herbwise/internal/usecase"

	"github.com/google/uuid"
)

const (
	settingsKeyPrefix  = "herbwise-settings:"
	introSeenKeyPrefix = "herbwise-intro-seen:"
)

type settingsService struct {
	store  repository.KVStore
	logger *slog.Logger
}

// NewSettingsService creates the user settings store.
func NewSettingsService(store repository.KVStore, logger *slog.Logger) usecase.SettingsUsecase {
	return &settingsService{
		store:  store,
		logger: logger,
	}
}

// GetSettings returns the stored settings document. Missing or corrupt data
// yields an empty document.
func (s *settingsService) GetSettings(ctx context.Context, userID uuid.UUID) (map[string]any, error) {
	raw, ok, err := s.store.Get(ctx, settingsKeyPrefix+userID.String())
	if err != nil {
		return nil, errors.Wrap(err, "load settings")
	}
	if !ok {
		return map[string]any{}, nil
	}

	var settings map[string]any
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.logger.Warn("Stored settings corrupt, resetting",
			slog.String("userID", userID.String()),
			slog.Any("error", err))

		return map[string]any{}, nil
	}

	return settings, nil
}

// SaveSettings replaces the stored settings document.
func (s *settingsService) SaveSettings(ctx context.Context, userID uuid.UUID, settings map[string]any) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "marshal settings")
	}

	return errors.Wrap(s.store.Set(ctx, settingsKeyPrefix+userID.String(), string(raw)), "save settings")
}

// HasSeenIntro reports whether the user dismissed the intro screen.
func (s *settingsService) HasSeenIntro(ctx context.Context, userID uuid.UUID) (bool, error) {
	raw, ok, err := s.store.Get(ctx, introSeenKeyPrefix+userID.String())
	if err != nil {
		return false, errors.Wrap(err, "load intro flag")
	}

	return ok && raw == "true", nil
}

// MarkIntroSeen records that the user dismissed the intro screen.
func (s *settingsService) MarkIntroSeen(ctx context.Context, userID uuid.UUID) error {
	return errors.Wrap(s.store.Set(ctx, introSeenKeyPrefix+userID.String(), "true"), "save intro flag")
}
