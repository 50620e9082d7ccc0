package entity

import (
	"fmt"
	"time"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is a known lifecycle state.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}

	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle
// transition. The forward chain is pending -> confirmed -> processing ->
// shipped -> delivered; cancellation is reachable from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == OrderCancelled {
		return true
	}

	switch s {
	case OrderPending:
		return next == OrderConfirmed
	case OrderConfirmed:
		return next == OrderProcessing
	case OrderProcessing:
		return next == OrderShipped
	case OrderShipped:
		return next == OrderDelivered
	}

	return false
}

// ShippingAddress is the destination captured at checkout.
type ShippingAddress struct {
	Name    string `json:"name" validate:"required"`
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// Order is an immutable snapshot of a cart at placement time. Total is
// computed once at creation and never recomputed from the item snapshot.
type Order struct {
	ID                string          `json:"id"`
	Items             []CartItem      `json:"items"`
	Total             float64         `json:"total"`
	Status            OrderStatus     `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	TrackingNumber    string          `json:"tracking_number"`
	ShippingAddress   ShippingAddress `json:"shipping_address"`
	PaymentMethod     string          `json:"payment_method"`
	DiscountAmount    float64         `json:"discount_amount,omitempty"`
	OfferCode         string          `json:"offer_code,omitempty"`
}

// NewOrderID derives a unique order identifier from the creation time plus a
// random suffix.
func NewOrderID(createdAt time.Time, suffix string) string {
	return fmt.Sprintf("ORD-%d-%s", createdAt.UnixMilli(), suffix)
}

// NewTrackingNumber derives the carrier tracking number from the creation time.
func NewTrackingNumber(createdAt time.Time) string {
	millis := fmt.Sprintf("%d", createdAt.UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}

	return "HW" + millis
}
