package domain

import (
	"strconv"
	"strings"
)

// ParsePrice turns a purchase-time price string into a float. Every rune
// outside [0-9.] is stripped before parsing, so "$1,299.50" parses as
// 1299.50. This transform must not change: stored priceAtPurchase values
// round-trip through it.
func ParsePrice(s string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, Invalidf("invalid price %q", s)
	}
	return v, nil
}
