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

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	cartUC  usecase.CartUsecase
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orderUC usecase.OrderUsecase, cartUC usecase.CartUsecase, offerUC usecase.OfferUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderUC: orderUC,
		cartUC:  cartUC,
		offerUC: offerUC,
		logger:  logger,
	}
}

type createOrderInput struct {
	ShippingAddress entity.ShippingAddress `json:"shipping_address" validate:"required"`
	PaymentMethod   string                 `json:"payment_method" validate:"required"`
	OfferCode       string                 `json:"offer_code"`
}

type updateStatusInput struct {
	Status string `json:"status"`
}

// CreateOrder places an order from the caller's cart. The discount is derived
// server-side from the attached offer code and the current cart total.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input createOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()

	var discount float64
	if input.OfferCode != "" {
		summary, err := h.cartUC.GetCart(ctx, userID)
		if err != nil {
			return errors.WithStack(err)
		}

		discount, err = h.offerUC.DiscountAmount(ctx, input.OfferCode, summary.Total)
		if err != nil {
			return errors.WithStack(err)
		}
	}

	order, err := h.orderUC.CreateOrder(ctx, userID, usecase.CreateOrderInput{
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		DiscountAmount:  discount,
		OfferCode:       input.OfferCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// ListOrders returns the caller's order history, most-recent-first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrder returns one of the caller's orders.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// UpdateStatus moves an order to a new lifecycle status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input updateStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := h.orderUC.UpdateOrderStatus(c.Request().Context(), userID, c.Param("id"), entity.OrderStatus(input.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated")
}
