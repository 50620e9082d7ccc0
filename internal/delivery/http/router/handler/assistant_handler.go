package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"herbwise/internal/delivery/http/response"
	"herbwise/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AssistantHandler holds dependencies for the assistant chat handler.
type AssistantHandler struct {
	uc     usecase.AssistantUsecase
	logger *slog.Logger
}

// NewAssistantHandler is the constructor for AssistantHandler, injected by Fx.
func NewAssistantHandler(uc usecase.AssistantUsecase, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{
		uc:     uc,
		logger: logger,
	}
}

type chatInput struct {
	Message string `json:"message"`
}

type chatOutput struct {
	Reply string `json:"reply"`
}

// Chat answers a free-text question about medicinal plants.
func (h *AssistantHandler) Chat(c echo.Context) error {
	var input chatInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}

	if strings.TrimSpace(input.Message) == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Message must not be empty")
	}

	reply, err := h.uc.Ask(c.Request().Context(), input.Message)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, chatOutput{Reply: reply}, "Assistant replied")
}
