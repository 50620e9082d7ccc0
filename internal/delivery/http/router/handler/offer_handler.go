package handler

import (
	"log/slog"
	"net/http"

	"herbwise/internal/delivery/http/response"
	"herbwise/internal/domain/entity"
	"herbwise/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OfferHandler holds dependencies for promotional offer handlers.
type OfferHandler struct {
	uc     usecase.OfferUsecase
	logger *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler, injected by Fx.
func NewOfferHandler(uc usecase.OfferUsecase, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{
		uc:     uc,
		logger: logger,
	}
}

type validateOfferInput struct {
	Code       string  `json:"code"`
	OrderTotal float64 `json:"order_total"`
}

type validateOfferOutput struct {
	Valid    bool          `json:"valid"`
	Message  string        `json:"message"`
	Offer    *entity.Offer `json:"offer,omitempty"`
	Discount float64       `json:"discount"`
}

// ListOffers returns every seeded offer regardless of validity.
func (h *OfferHandler) ListOffers(c echo.Context) error {
	offers, err := h.uc.ListOffers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offers, "Offers retrieved successfully")
}

// ActiveOffers returns the offers redeemable right now.
func (h *OfferHandler) ActiveOffers(c echo.Context) error {
	offers, err := h.uc.ActiveOffers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offers, "Active offers retrieved successfully")
}

// ValidateOffer checks a code against an order total and reports the discount
// it would grant. An invalid code is a successful response with valid=false.
func (h *OfferHandler) ValidateOffer(c echo.Context) error {
	var input validateOfferInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer validation input")
	}

	ctx := c.Request().Context()

	validation, err := h.uc.ValidateOffer(ctx, input.Code, input.OrderTotal)
	if err != nil {
		return errors.WithStack(err)
	}

	output := validateOfferOutput{
		Valid:   validation.Valid,
		Message: validation.Message,
		Offer:   validation.Offer,
	}
	if validation.Valid {
		output.Discount, err = h.uc.DiscountAmount(ctx, input.Code, input.OrderTotal)
		if err != nil {
			return errors.WithStack(err)
		}
	}

	return response.Success(c, http.StatusOK, output, "Offer validation completed")
}
