package services

import "testing"

func TestCalculatePriceTierLookup(t *testing.T) {
	cases := []struct {
		service string
		weight  float64
		want    float64
	}{
		{"Mixed Wash Dry Fold", 5, 170},
		{"Mixed Wash Dry Fold", 6, 300},
		{"Mixed Wash Dry Fold", 15, 470},
		{"Mixed Wash Dry Fold", 0, 170}, // first tier starts at 0 inclusive
		{"Mixed Wash Dry Fold", 16, 0},  // beyond the heaviest tier
		{"Mixed Wash Dry Fold", -1, 0},  // below every tier
		{"Duvets and Blankets", 3, 150},
		{"Duvets and Blankets", 4, 250},
	}
	for _, tc := range cases {
		got := CalculatePrice(tc.service, tc.weight)
		if got != tc.want {
			t.Fatalf("CalculatePrice(%q, %v) = %v, want %v", tc.service, tc.weight, got, tc.want)
		}
	}
}

func TestCalculatePriceDeterministic(t *testing.T) {
	first := CalculatePrice("Mixed Wash Dry Fold", 8)
	for i := 0; i < 5; i++ {
		if got := CalculatePrice("Mixed Wash Dry Fold", 8); got != first {
			t.Fatalf("repeated call returned %v, first call returned %v", got, first)
		}
	}
	if first != 300 {
		t.Fatalf("8kg should land in the 6-10 tier at 300, got %v", first)
	}
}

func TestCalculatePriceUnknownService(t *testing.T) {
	if got := CalculatePrice("Nonexistent Service", 5); got != 0 {
		t.Fatalf("unknown service should price at 0, got %v", got)
	}
}

func TestCalculatePriceCaseInsensitive(t *testing.T) {
	if got := CalculatePrice("mixed wash dry fold", 5); got != 170 {
		t.Fatalf("lowercase name should match, got %v", got)
	}
	if got := CalculatePrice("MIXED WASH DRY FOLD", 5); got != 170 {
		t.Fatalf("uppercase name should match, got %v", got)
	}
}

func TestServiceNamesCoverTable(t *testing.T) {
	names := ServiceNames()
	if len(names) == 0 {
		t.Fatal("rate table should not be empty")
	}
	for _, name := range names {
		tiers, ok := TiersFor(name)
		if !ok || len(tiers) == 0 {
			t.Fatalf("service %q listed but has no tiers", name)
		}
	}
}

func TestTiersForUnknown(t *testing.T) {
	if _, ok := TiersFor("Nonexistent Service"); ok {
		t.Fatal("unknown service should report no tiers")
	}
}

func TestPriceSpan(t *testing.T) {
	min, max, ok := PriceSpan("Mixed Wash Dry Fold")
	if !ok {
		t.Fatal("expected a span for a priced service")
	}
	if min != 170 || max != 470 {
		t.Fatalf("span = [%v, %v], want [170, 470]", min, max)
	}

	if _, _, ok := PriceSpan("Nonexistent Service"); ok {
		t.Fatal("unknown service should report no span")
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(170); got != "R170.00" {
		t.Fatalf("FormatPrice(170) = %q, want %q", got, "R170.00")
	}
	if got := FormatPrice(470.5); got != "R470.50" {
		t.Fatalf("FormatPrice(470.5) = %q, want %q", got, "R470.50")
	}
}
