// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateDateOrder checks that collection happens on or before departure.
// Both arguments must already be YYYY-MM-DD strings; the format sorts
// lexicographically so a plain string compare is enough.
func ValidateDateOrder(collection, departure string) bool {
	return collection <= departure
}

var priceRangeRegex = regexp.MustCompile(`^R?\d+(\.\d{1,2})?(\s*-\s*R?\d+(\.\d{1,2})?)?$`)

// ValidatePriceString checks the legacy service price format: a single
// amount ("R170") or a min-max range ("R170-R470").
func ValidatePriceString(price string) bool {
	return priceRangeRegex.MatchString(strings.TrimSpace(price))
}
