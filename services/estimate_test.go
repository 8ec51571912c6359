package services

import (
	"testing"

	"laundrypro-backend/models"
)

func TestEstimateFromPriceRange(t *testing.T) {
	cases := []struct {
		price string
		want  float64
	}{
		{"R170-R470", 320},
		{"R170 - R470", 320},
		{"R170", 170},
		{"170-470", 320},
		{"R99.50", 99.5},
		{"", 0},
		{"call us", 0},
	}
	for _, tc := range cases {
		if got := EstimateFromPriceRange(tc.price); got != tc.want {
			t.Fatalf("EstimateFromPriceRange(%q) = %v, want %v", tc.price, got, tc.want)
		}
	}
}

func TestBookingRevenuePrefersAuthoritativePrice(t *testing.T) {
	price := 300.0
	b := models.Booking{
		TotalPrice: &price,
		Service:    models.Service{Price: "R170-R470"},
	}
	if got := BookingRevenue(&b); got != 300 {
		t.Fatalf("revenue = %v, want authoritative 300", got)
	}

	b.TotalPrice = nil
	if got := BookingRevenue(&b); got != 320 {
		t.Fatalf("revenue = %v, want range estimate 320", got)
	}
}
