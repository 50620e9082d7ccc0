package entity

import "time"

// DiscountType selects how an offer's discount value is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Offer is a redeemable promotion. A zero MinOrderAmount means no minimum and
// a zero UsageLimit means unlimited redemptions.
type Offer struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue float64      `json:"discount_value"`

	MinOrderAmount float64   `json:"min_order_amount,omitempty"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	IsActive       bool      `json:"is_active"`
	UsageLimit     int       `json:"usage_limit,omitempty"`
	UsedCount      int       `json:"used_count"`

	// Targeting lists are informational in this version and are not enforced
	// in discount computation.
	TargetPlants     []string `json:"target_plants,omitempty"`
	TargetCategories []string `json:"target_categories,omitempty"`
}

// WithinWindow reports whether now falls inside the activation window.
func (o *Offer) WithinWindow(now time.Time) bool {
	return !now.Before(o.StartDate) && !now.After(o.EndDate)
}

// UsageExhausted reports whether the usage limit, if set, has been reached.
func (o *Offer) UsageExhausted() bool {
	return o.UsageLimit > 0 && o.UsedCount >= o.UsageLimit
}
