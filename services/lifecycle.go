// services/lifecycle.go
package services

import (
	"fmt"
	"time"

	"laundrypro-backend/models"
)

// ApplyStatusChange mutates a booking for a transition to newStatus. It is
// pure over its inputs (the clock is passed in) so callers persist the result
// only after it succeeds; on error nothing is touched.
//
// Effects by target status:
//   - processing: a positive weight recomputes TotalPrice from the rate
//     table, overriding any caller-supplied price. The weight is kept.
//   - completed: CompletedAt is stamped with now on every entry, not only the
//     first. A caller-supplied price is persisted as the authoritative final
//     price; no weight derivation happens here.
//   - cancelled: no derived fields are touched.
func ApplyStatusChange(b *models.Booking, newStatus models.BookingStatus, totalPrice, weightKg *float64, now time.Time) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid booking status: %q", newStatus)
	}

	switch newStatus {
	case models.StatusProcessing:
		if weightKg != nil && *weightKg > 0 {
			price := CalculatePrice(b.Service.Name, *weightKg)
			b.TotalPrice = &price
			b.WeightKg = weightKg
		} else if totalPrice != nil {
			b.TotalPrice = totalPrice
		}
	case models.StatusCompleted:
		stamped := now
		b.CompletedAt = &stamped
		if totalPrice != nil {
			b.TotalPrice = totalPrice
		}
	case models.StatusCancelled:
		// nothing derived
	default:
		if totalPrice != nil {
			b.TotalPrice = totalPrice
		}
	}

	b.Status = newStatus
	return nil
}

// SetPaymentMethod records how a booking was settled. Allowed at any time but
// only meaningful once the booking is completed; status and CompletedAt are
// never touched, and re-setting the same value is a no-op in effect.
func SetPaymentMethod(b *models.Booking, method models.PaymentMethod) error {
	if !method.IsValid() {
		return fmt.Errorf("invalid payment method: %q", method)
	}
	b.PaymentMethod = &method
	return nil
}
