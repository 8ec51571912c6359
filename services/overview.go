// services/overview.go
package services

import (
	"sort"
	"strings"
	"time"

	"laundrypro-backend/models"
	"laundrypro-backend/utils"
)

// DayGroup is one collection-date bucket of the overview, already sorted for
// display.
type DayGroup struct {
	Date     string           `json:"date"`
	Bookings []models.Booking `json:"bookings"`
}

// statusRank orders bookings inside a date bucket. Completed-but-unpaid rows
// need attention first, then settled ones, then work in flight.
func statusRank(b *models.Booking) int {
	switch {
	case b.IsAwaitingPayment():
		return 0
	case b.IsSettled():
		return 1
	case b.Status == models.StatusProcessing:
		return 2
	case b.Status == models.StatusPending:
		return 3
	case b.Status == models.StatusCancelled:
		return 4
	default:
		return 5
	}
}

func matchesMonth(b *models.Booking, year int, month time.Month) bool {
	d, err := utils.ParseCalendarDate(b.CollectionDate)
	if err != nil {
		return false
	}
	return d.Year() == year && d.Month() == month
}

func matchesQuery(b *models.Booking, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.CustomerName()), q)
}

// BuildOverview derives the grouped booking view for one calendar month and
// search query. It is a pure function of its inputs: bookings are filtered by
// collection month and customer-name substring, partitioned into one bucket
// per collection date, buckets ordered most recent first, and each bucket
// ordered by status rank with collection date descending as tiebreak.
func BuildOverview(bookings []models.Booking, year int, month time.Month, query string) []DayGroup {
	buckets := make(map[string][]models.Booking)
	for i := range bookings {
		b := bookings[i]
		if !matchesMonth(&b, year, month) || !matchesQuery(&b, query) {
			continue
		}
		buckets[b.CollectionDate] = append(buckets[b.CollectionDate], b)
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	// Calendar-date strings sort lexicographically.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	groups := make([]DayGroup, 0, len(dates))
	for _, date := range dates {
		group := buckets[date]
		sort.SliceStable(group, func(i, j int) bool {
			ri, rj := statusRank(&group[i]), statusRank(&group[j])
			if ri != rj {
				return ri < rj
			}
			return group[i].CollectionDate > group[j].CollectionDate
		})
		groups = append(groups, DayGroup{Date: date, Bookings: group})
	}
	return groups
}

// ServiceStat is the per-service slice of the analytics fold.
type ServiceStat struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// BookingStats is the aggregate view the dashboard and reports render.
type BookingStats struct {
	TotalRevenue    float64                      `json:"total_revenue"`
	TotalBookings   int                          `json:"total_bookings"`
	CountsByStatus  map[models.BookingStatus]int `json:"counts_by_status"`
	AwaitingPayment int                          `json:"awaiting_payment"`
	AvgOrderValue   float64                      `json:"avg_order_value"`
	PerService      []ServiceStat                `json:"per_service"`
	RevenueByDay    map[int]float64              `json:"revenue_by_day"`
}

// ComputeStats folds once over a booking set (the caller month-filters it if
// needed). Revenue uses the authoritative total price when present and the
// legacy price-range estimate otherwise.
func ComputeStats(bookings []models.Booking) BookingStats {
	stats := BookingStats{
		CountsByStatus: make(map[models.BookingStatus]int),
		RevenueByDay:   make(map[int]float64),
	}
	perService := make(map[string]*ServiceStat)
	order := make([]string, 0)

	for i := range bookings {
		b := &bookings[i]
		revenue := BookingRevenue(b)

		stats.TotalBookings++
		stats.TotalRevenue += revenue
		stats.CountsByStatus[b.Status]++
		if b.IsAwaitingPayment() {
			stats.AwaitingPayment++
		}

		name := b.Service.Name
		if _, ok := perService[name]; !ok {
			perService[name] = &ServiceStat{Name: name}
			order = append(order, name)
		}
		perService[name].Count++
		perService[name].Revenue += revenue

		if d, err := utils.ParseCalendarDate(b.CollectionDate); err == nil {
			stats.RevenueByDay[d.Day()] += revenue
		}
	}

	if stats.TotalBookings > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(stats.TotalBookings)
	}
	for _, name := range order {
		stats.PerService = append(stats.PerService, *perService[name])
	}
	sort.SliceStable(stats.PerService, func(i, j int) bool {
		return stats.PerService[i].Revenue > stats.PerService[j].Revenue
	})
	return stats
}

// FilterByMonth keeps the bookings whose collection date falls in the given
// calendar month.
func FilterByMonth(bookings []models.Booking, year int, month time.Month) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	for i := range bookings {
		if matchesMonth(&bookings[i], year, month) {
			out = append(out, bookings[i])
		}
	}
	return out
}
