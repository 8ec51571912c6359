// services/estimate.go
package services

import (
	"regexp"
	"strconv"

	"laundrypro-backend/models"
)

// Legacy fallback: services without a rate-table entry carry a price string
// like "R170" or "R170-R470". Everything here can go once all services are
// migrated to tiered pricing.

var priceAmountRegex = regexp.MustCompile(`R?(\d+(?:\.\d+)?)`)

// EstimateFromPriceRange extracts an estimate from a legacy price string.
// A "min-max" range estimates as the mean of the two amounts, a single
// amount as itself, and anything unparseable as 0.
func EstimateFromPriceRange(price string) float64 {
	matches := priceAmountRegex.FindAllStringSubmatch(price, 2)
	switch len(matches) {
	case 0:
		return 0
	case 1:
		v, _ := strconv.ParseFloat(matches[0][1], 64)
		return v
	default:
		lo, _ := strconv.ParseFloat(matches[0][1], 64)
		hi, _ := strconv.ParseFloat(matches[1][1], 64)
		return (lo + hi) / 2
	}
}

// BookingRevenue is the amount a booking contributes to revenue aggregates:
// the authoritative total price when set, otherwise the legacy estimate.
func BookingRevenue(b *models.Booking) float64 {
	if b.TotalPrice != nil {
		return *b.TotalPrice
	}
	return EstimateFromPriceRange(b.Service.Price)
}
