package models

import "testing"

func TestParseBookingStatus(t *testing.T) {
	for _, s := range AllBookingStatuses() {
		parsed, err := ParseBookingStatus(string(s))
		if err != nil {
			t.Fatalf("valid status %q rejected: %v", s, err)
		}
		if parsed != s {
			t.Fatalf("parsed %q, want %q", parsed, s)
		}
	}

	for _, v := range []string{"", "done", "PENDING"} {
		if _, err := ParseBookingStatus(v); err == nil {
			t.Fatalf("invalid status %q accepted", v)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range AllBookingStatuses() {
		terminal := s == StatusCompleted || s == StatusCancelled
		if s.IsTerminal() != terminal {
			t.Fatalf("IsTerminal(%q) = %v, want %v", s, s.IsTerminal(), terminal)
		}
	}
}

func TestAdminTransitionTargets(t *testing.T) {
	targets := AdminTransitionTargets()
	want := map[BookingStatus]bool{StatusProcessing: true, StatusCompleted: true, StatusCancelled: true}
	if len(targets) != len(want) {
		t.Fatalf("got %d targets, want %d", len(targets), len(want))
	}
	for _, s := range targets {
		if !want[s] {
			t.Fatalf("unexpected admin target %q", s)
		}
	}
}

// Every status the type accepts must have a presentation entry: views render
// from this one table, so a hole here is a silent blank badge.
func TestEveryStatusHasPresentation(t *testing.T) {
	fallback := BookingStatus("nonsense").Presentation()
	for _, s := range AllBookingStatuses() {
		p := s.Presentation()
		if p.Label == "" || p.Color == "" {
			t.Fatalf("status %q has empty presentation", s)
		}
		if p == fallback {
			t.Fatalf("status %q falls through to the unknown-status presentation", s)
		}
	}
}

func TestParsePaymentMethod(t *testing.T) {
	for _, v := range []string{"card", "cash"} {
		if _, err := ParsePaymentMethod(v); err != nil {
			t.Fatalf("valid payment method %q rejected: %v", v, err)
		}
	}
	if _, err := ParsePaymentMethod("eft"); err == nil {
		t.Fatal("invalid payment method accepted")
	}
}

func TestDerivedSettlementClassification(t *testing.T) {
	card := PaymentCard
	b := Booking{Status: StatusCompleted}

	if !b.IsAwaitingPayment() || b.IsSettled() {
		t.Fatal("completed without payment method should be awaiting payment")
	}

	b.PaymentMethod = &card
	if b.IsAwaitingPayment() || !b.IsSettled() {
		t.Fatal("completed with payment method should be settled")
	}

	b.Status = StatusProcessing
	if b.IsAwaitingPayment() || b.IsSettled() {
		t.Fatal("non-completed booking is neither settled nor awaiting payment")
	}
}
