// Package pricing parses unit prices out of the catalog's free-text cost
// strings.
package pricing

import "strconv"

// Currency markers recognized in catalog cost strings.
var currencyMarkers = []rune{'$', '₹', '€', '£'}

// ParseUnitPrice extracts the unit price from a cost-range string such as
// "$8-15/lb" or "₹150-250/kg". The grammar is: currency marker, integer,
// optional "-" upper bound, optional "/" unit. The lower bound of the range
// is taken as the unit price. Unparseable input yields 0; callers rely on
// that lenient fallback rather than an error.
func ParseUnitPrice(cost string) float64 {
	runes := []rune(cost)
	for i := 0; i < len(runes); i++ {
		if !isCurrencyMarker(runes[i]) {
			continue
		}

		j := i + 1
		for j < len(runes) && runes[j] == ' ' {
			j++
		}

		start := j
		for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
			j++
		}
		if j == start {
			// Marker with no digits after it, keep scanning.
			continue
		}

		value, err := strconv.Atoi(string(runes[start:j]))
		if err != nil {
			continue
		}

		return float64(value)
	}

	return 0
}

func isCurrencyMarker(r rune) bool {
	for _, marker := range currencyMarkers {
		if r == marker {
			return true
		}
	}

	return false
}
