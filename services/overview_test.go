package services

import (
	"testing"
	"time"

	"laundrypro-backend/models"

	"github.com/google/uuid"
)

func overviewBooking(first, last, date string, status models.BookingStatus) models.Booking {
	return models.Booking{
		ID:             uuid.New(),
		FirstName:      first,
		LastName:       last,
		Phone:          "+27821234567",
		Service:        models.Service{Name: "Mixed Wash Dry Fold", Price: "R170-R470"},
		CollectionDate: date,
		DepartureDate:  date,
		Status:         status,
	}
}

func paid(b models.Booking, m models.PaymentMethod) models.Booking {
	b.PaymentMethod = &m
	return b
}

func TestOverviewMonthAndSearchComposition(t *testing.T) {
	bookings := []models.Booking{
		overviewBooking("Thandi", "Nkosi", "2026-08-10", models.StatusPending),
		overviewBooking("Sipho", "Dlamini", "2026-08-12", models.StatusPending),
		overviewBooking("Thandi", "Nkosi", "2026-07-10", models.StatusPending), // other month
	}

	groups := BuildOverview(bookings, 2026, time.August, "")
	total := 0
	for _, g := range groups {
		total += len(g.Bookings)
	}
	if total != 2 {
		t.Fatalf("month filter kept %d bookings, want 2", total)
	}

	groups = BuildOverview(bookings, 2026, time.August, "  thandi nk ")
	if len(groups) != 1 || len(groups[0].Bookings) != 1 {
		t.Fatalf("search should match exactly one booking, got %+v", groups)
	}
	if groups[0].Bookings[0].FirstName != "Thandi" {
		t.Fatalf("wrong booking matched: %s", groups[0].Bookings[0].CustomerName())
	}
}

func TestOverviewSearchDoesNotMatchPhoneOrService(t *testing.T) {
	bookings := []models.Booking{
		overviewBooking("Thandi", "Nkosi", "2026-08-10", models.StatusPending),
	}
	if groups := BuildOverview(bookings, 2026, time.August, "27821234567"); len(groups) != 0 {
		t.Fatal("phone number should not match the name search")
	}
	if groups := BuildOverview(bookings, 2026, time.August, "Mixed Wash"); len(groups) != 0 {
		t.Fatal("service name should not match the name search")
	}
}

func TestOverviewGroupingExhaustiveAndDisjoint(t *testing.T) {
	bookings := []models.Booking{
		overviewBooking("A", "One", "2026-08-10", models.StatusPending),
		overviewBooking("B", "Two", "2026-08-10", models.StatusProcessing),
		overviewBooking("C", "Three", "2026-08-11", models.StatusCompleted),
		overviewBooking("D", "Four", "2026-08-12", models.StatusCancelled),
	}

	groups := BuildOverview(bookings, 2026, time.August, "")

	seen := make(map[uuid.UUID]int)
	for _, g := range groups {
		for _, b := range g.Bookings {
			if b.CollectionDate != g.Date {
				t.Fatalf("booking dated %s placed in bucket %s", b.CollectionDate, g.Date)
			}
			seen[b.ID]++
		}
	}
	if len(seen) != len(bookings) {
		t.Fatalf("groups cover %d bookings, want %d", len(seen), len(bookings))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("booking %s appears in %d buckets", id, n)
		}
	}
}

func TestOverviewBucketsSortedMostRecentFirst(t *testing.T) {
	bookings := []models.Booking{
		overviewBooking("A", "One", "2026-08-03", models.StatusPending),
		overviewBooking("B", "Two", "2026-08-21", models.StatusPending),
		overviewBooking("C", "Three", "2026-08-12", models.StatusPending),
	}

	groups := BuildOverview(bookings, 2026, time.August, "")
	want := []string{"2026-08-21", "2026-08-12", "2026-08-03"}
	if len(groups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(groups), len(want))
	}
	for i, g := range groups {
		if g.Date != want[i] {
			t.Fatalf("group %d is %s, want %s", i, g.Date, want[i])
		}
	}
}

func TestOverviewAwaitingPaymentSortsFirst(t *testing.T) {
	bookings := []models.Booking{
		overviewBooking("E", "Cancelled", "2026-08-10", models.StatusCancelled),
		overviewBooking("D", "Pending", "2026-08-10", models.StatusPending),
		paid(overviewBooking("B", "Settled", "2026-08-10", models.StatusCompleted), models.PaymentCard),
		overviewBooking("C", "Working", "2026-08-10", models.StatusProcessing),
		overviewBooking("A", "Unpaid", "2026-08-10", models.StatusCompleted),
	}

	groups := BuildOverview(bookings, 2026, time.August, "")
	if len(groups) != 1 {
		t.Fatalf("expected one bucket, got %d", len(groups))
	}

	wantOrder := []string{"Unpaid", "Settled", "Working", "Pending", "Cancelled"}
	for i, b := range groups[0].Bookings {
		if b.LastName != wantOrder[i] {
			t.Fatalf("position %d is %s, want %s", i, b.LastName, wantOrder[i])
		}
	}
}

func TestComputeStatsFold(t *testing.T) {
	price := 300.0
	withPrice := overviewBooking("A", "One", "2026-08-10", models.StatusCompleted)
	withPrice.TotalPrice = &price

	estimated := overviewBooking("B", "Two", "2026-08-11", models.StatusPending)
	// no TotalPrice: falls back to the R170-R470 range estimate of 320

	stats := ComputeStats([]models.Booking{withPrice, estimated})

	if stats.TotalBookings != 2 {
		t.Fatalf("total bookings = %d, want 2", stats.TotalBookings)
	}
	if stats.TotalRevenue != 620 {
		t.Fatalf("total revenue = %v, want 620", stats.TotalRevenue)
	}
	if stats.AvgOrderValue != 310 {
		t.Fatalf("avg order value = %v, want 310", stats.AvgOrderValue)
	}
	if stats.CountsByStatus[models.StatusCompleted] != 1 || stats.CountsByStatus[models.StatusPending] != 1 {
		t.Fatalf("counts by status wrong: %+v", stats.CountsByStatus)
	}
	if stats.AwaitingPayment != 1 {
		t.Fatalf("awaiting payment = %d, want 1", stats.AwaitingPayment)
	}
	if len(stats.PerService) != 1 || stats.PerService[0].Count != 2 || stats.PerService[0].Revenue != 620 {
		t.Fatalf("per-service stats wrong: %+v", stats.PerService)
	}
	if stats.RevenueByDay[10] != 300 || stats.RevenueByDay[11] != 320 {
		t.Fatalf("day histogram wrong: %+v", stats.RevenueByDay)
	}
}

func TestFilterByMonth(t *testing.T) {
	bookings := []models.Booking{
		overviewBooking("A", "One", "2026-08-10", models.StatusPending),
		overviewBooking("B", "Two", "2026-07-31", models.StatusPending),
	}
	kept := FilterByMonth(bookings, 2026, time.August)
	if len(kept) != 1 || kept[0].LastName != "One" {
		t.Fatalf("month filter wrong: %+v", kept)
	}
}
