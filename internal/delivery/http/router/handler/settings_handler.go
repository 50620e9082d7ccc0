package handler

import (
	"log/slog"
	"net/http"

	"herbwise/internal/delivery/http/response"
	"herbwise/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SettingsHandler holds dependencies for user settings handlers.
type SettingsHandler struct {
	uc     usecase.SettingsUsecase
	logger *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler, injected by Fx.
func NewSettingsHandler(uc usecase.SettingsUsecase, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		uc:     uc,
		logger: logger,
	}
}

type settingsOutput struct {
	Settings  map[string]any `json:"settings"`
	IntroSeen bool           `json:"intro_seen"`
}

// GetSettings returns the caller's settings document and intro-seen flag.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ctx := c.Request().Context()

	settings, err := h.uc.GetSettings(ctx, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	introSeen, err := h.uc.HasSeenIntro(ctx, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settingsOutput{
		Settings:  settings,
		IntroSeen: introSeen,
	}, "Settings retrieved successfully")
}

// SaveSettings replaces the caller's settings document.
func (h *SettingsHandler) SaveSettings(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var settings map[string]any
	if err := c.Bind(&settings); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	if err := h.uc.SaveSettings(c.Request().Context(), userID, settings); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Settings saved")
}

// MarkIntroSeen records that the caller dismissed the intro screen.
func (h *SettingsHandler) MarkIntroSeen(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.MarkIntroSeen(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Intro marked as seen")
}
