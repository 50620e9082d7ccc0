package entity

import (
	"fmt"
	"time"
)

// CartItem is a single line in a shopping cart. At most one item exists per
// (plant, form) pair inside a cart; adding a duplicate increments Quantity on
// the existing line instead of creating a new one.
type CartItem struct {
	ID       string    `json:"id"`
	Plant    *Plant    `json:"plant"`
	Form     PlantForm `json:"form"`
	Quantity int       `json:"quantity"`
	// Price is the unit price parsed once from the plant's cost string at
	// add-time and never re-derived afterwards.
	Price float64 `json:"price"`
}

// Subtotal returns the line total.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// NewCartItemID builds the unique line identifier from the plant, form and
// creation time.
func NewCartItemID(plantID string, form PlantForm, createdAt time.Time) string {
	return fmt.Sprintf("%s-%s-%d", plantID, form, createdAt.UnixMilli())
}

// CartTotal sums price times quantity over all items.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}

	return total
}

// CartItemsCount sums quantities over all items, not the number of lines.
func CartItemsCount(items []CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}

	return count
}
