package models

import "fmt"

// BookingStatus is the closed set of booking lifecycle states.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed" // legacy, kept for old rows
	StatusCollected  BookingStatus = "collected" // legacy, kept for old rows
	StatusProcessing BookingStatus = "processing"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// AllBookingStatuses lists every value the type accepts, legacy ones included.
func AllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		StatusPending,
		StatusConfirmed,
		StatusCollected,
		StatusProcessing,
		StatusCompleted,
		StatusCancelled,
	}
}

// AdminTransitionTargets are the only statuses the admin status-update
// workflow offers. Legacy intermediate states are not reachable through it.
func AdminTransitionTargets() []BookingStatus {
	return []BookingStatus{StatusProcessing, StatusCompleted, StatusCancelled}
}

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCollected, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition out of this status is exposed.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ParseBookingStatus converts a string into a BookingStatus, rejecting
// anything outside the enumerated set.
func ParseBookingStatus(v string) (BookingStatus, error) {
	s := BookingStatus(v)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid booking status: %q", v)
	}
	return s, nil
}

// StatusPresentation is the single shared status -> display mapping. Views
// must read from this table instead of keeping their own copies.
type StatusPresentation struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var statusPresentations = map[BookingStatus]StatusPresentation{
	StatusPending:    {Label: "Pending", Color: "amber"},
	StatusConfirmed:  {Label: "Confirmed", Color: "sky"},
	StatusCollected:  {Label: "Collected", Color: "indigo"},
	StatusProcessing: {Label: "Processing", Color: "blue"},
	StatusCompleted:  {Label: "Completed", Color: "green"},
	StatusCancelled:  {Label: "Cancelled", Color: "red"},
}

// Presentation returns the display mapping for a status. Unknown values get a
// neutral fallback so a stale row can still render.
func (s BookingStatus) Presentation() StatusPresentation {
	if p, ok := statusPresentations[s]; ok {
		return p
	}
	return StatusPresentation{Label: string(s), Color: "gray"}
}

// PaymentMethod is how a completed booking was settled.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentCard || m == PaymentCash
}

func ParsePaymentMethod(v string) (PaymentMethod, error) {
	m := PaymentMethod(v)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid payment method: %q", v)
	}
	return m, nil
}
