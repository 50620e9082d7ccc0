package memory

import (
	"time"

	"herbwise/internal/domain/entity"
)

const weekendOfferID = "weekend15"

// SeedOffers builds the default promotional offers with activation windows
// relative to now.
func SeedOffers(now time.Time) []*entity.Offer {
	weekendStart, weekendEnd := WeekendWindow(now)

	return []*entity.Offer{
		{
			ID:             "welcome25",
			Title:          "Welcome to HerbWise!",
			Description:    "Get 25% off your first order",
			Code:           "WELCOME25",
			DiscountType:   entity.DiscountPercentage,
			DiscountValue:  25,
			MinOrderAmount: 30,
			StartDate:      now.Add(-7 * 24 * time.Hour),
			EndDate:        now.Add(30 * 24 * time.Hour),
			IsActive:       true,
			UsageLimit:     1000,
		},
		{
			ID:             "flash50",
			Title:          "Flash Sale - Limited Time!",
			Description:    "$10 off orders over $50",
			Code:           "FLASH10",
			DiscountType:   entity.DiscountFixed,
			DiscountValue:  10,
			MinOrderAmount: 50,
			StartDate:      now,
			EndDate:        now.Add(2 * time.Hour),
			IsActive:       true,
			UsageLimit:     100,
		},
		{
			ID:            weekendOfferID,
			Title:         "Weekend Special",
			Description:   "15% off weekend orders",
			Code:          "WEEKEND15",
			DiscountType:  entity.DiscountPercentage,
			DiscountValue: 15,
			StartDate:     weekendStart,
			EndDate:       weekendEnd,
			IsActive:      true,
			UsageLimit:    500,
		},
		{
			ID:               "immune20",
			Title:            "Immune Boost Special",
			Description:      "20% off immune-supporting herbs",
			Code:             "IMMUNE20",
			DiscountType:     entity.DiscountPercentage,
			DiscountValue:    20,
			StartDate:        now.Add(-3 * 24 * time.Hour),
			EndDate:          now.Add(10 * 24 * time.Hour),
			IsActive:         true,
			UsageLimit:       200,
			TargetCategories: []string{"Immune", "Antiviral", "Respiratory"},
		},
		{
			ID:             "bulk30",
			Title:          "Bulk Order Discount",
			Description:    "$30 off orders over $150",
			Code:           "BULK30",
			DiscountType:   entity.DiscountFixed,
			DiscountValue:  30,
			MinOrderAmount: 150,
			StartDate:      now.Add(-24 * time.Hour),
			EndDate:        now.Add(14 * 24 * time.Hour),
			IsActive:       true,
			UsageLimit:     50,
		},
	}
}

// WeekendWindow returns the activation window of the weekend offer relative
// to now: Saturday 00:00 through Monday 23:59:59 of the weekend that contains
// now, or the upcoming weekend on a weekday.
func WeekendWindow(now time.Time) (time.Time, time.Time) {
	weekday := int(now.Weekday())

	daysUntilSaturday := (6 - weekday) % 7
	if now.Weekday() == time.Sunday {
		// The weekend containing a Sunday started yesterday.
		daysUntilSaturday = -1
	}

	daysUntilMonday := 8 - weekday
	if now.Weekday() == time.Sunday {
		daysUntilMonday = 1
	}

	saturday := now.AddDate(0, 0, daysUntilSaturday)
	start := time.Date(saturday.Year(), saturday.Month(), saturday.Day(), 0, 0, 0, 0, now.Location())

	monday := now.AddDate(0, 0, daysUntilMonday)
	end := time.Date(monday.Year(), monday.Month(), monday.Day(), 23, 59, 59, 999_000_000, now.Location())

	return start, end
}
