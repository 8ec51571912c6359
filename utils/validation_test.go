package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{"+27821234567", "27821234567", "(2782) 123-4567"}
	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Fatalf("phone %q should be valid", p)
		}
	}

	invalid := []string{"", "abc", "+0123"}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Fatalf("phone %q should be invalid", p)
		}
	}
}

func TestValidateDateOrder(t *testing.T) {
	if !ValidateDateOrder("2026-08-10", "2026-08-12") {
		t.Fatal("collection before departure should pass")
	}
	if !ValidateDateOrder("2026-08-10", "2026-08-10") {
		t.Fatal("same-day collection and departure should pass")
	}
	if ValidateDateOrder("2026-08-12", "2026-08-10") {
		t.Fatal("collection after departure should fail")
	}
}

func TestValidatePriceString(t *testing.T) {
	valid := []string{"R170", "R170-R470", "170-470", "R99.50", "R170 - R470"}
	for _, p := range valid {
		if !ValidatePriceString(p) {
			t.Fatalf("price %q should be valid", p)
		}
	}

	invalid := []string{"", "free", "R170-R470-R900", "R-170"}
	for _, p := range invalid {
		if ValidatePriceString(p) {
			t.Fatalf("price %q should be invalid", p)
		}
	}
}

func TestIsCalendarDate(t *testing.T) {
	if !IsCalendarDate("2026-08-10") {
		t.Fatal("well-formed date rejected")
	}
	for _, d := range []string{"2026-8-1", "10-08-2026", "2026-13-01", "tomorrow"} {
		if IsCalendarDate(d) {
			t.Fatalf("malformed date %q accepted", d)
		}
	}
}
