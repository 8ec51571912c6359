package controllers

import (
	"net/http"
	"sync"
	"time"

	"laundrypro-backend/config"
	"laundrypro-backend/models"
	"laundrypro-backend/services"
	"laundrypro-backend/utils"

	"github.com/gin-gonic/gin"
)

// The dashboard snapshot is cached until a booking or service write
// invalidates it through the event bus. Wiring happens once on first use.
var (
	dashboardMu    sync.Mutex
	dashboardCache *gin.H
	dashboardOnce  sync.Once
)

func invalidateDashboard(services.Event) {
	dashboardMu.Lock()
	dashboardCache = nil
	dashboardMu.Unlock()
}

// GetDashboardOverview returns the admin landing view: this month's numbers
// plus today's and tomorrow's collection runs.
func GetDashboardOverview(c *gin.Context) {
	dashboardOnce.Do(func() {
		services.Events.Subscribe(invalidateDashboard)
	})

	dashboardMu.Lock()
	if dashboardCache != nil {
		cached := *dashboardCache
		dashboardMu.Unlock()
		c.JSON(http.StatusOK, cached)
		return
	}
	dashboardMu.Unlock()

	var bookings []models.Booking
	if err := config.DB.Preload("Service").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	now := time.Now()
	monthly := services.FilterByMonth(bookings, now.Year(), now.Month())
	stats := services.ComputeStats(monthly)

	today := utils.Today()
	tomorrow := utils.Tomorrow()
	var todayCollections, tomorrowCollections []models.Booking
	for i := range bookings {
		switch bookings[i].CollectionDate {
		case today:
			todayCollections = append(todayCollections, bookings[i])
		case tomorrow:
			tomorrowCollections = append(tomorrowCollections, bookings[i])
		}
	}

	response := gin.H{
		"monthlyRevenue":      stats.TotalRevenue,
		"monthlyBookings":     stats.TotalBookings,
		"countsByStatus":      stats.CountsByStatus,
		"awaitingPayment":     stats.AwaitingPayment,
		"avgOrderValue":       stats.AvgOrderValue,
		"todayCollections":    todayCollections,
		"tomorrowCollections": tomorrowCollections,
	}

	dashboardMu.Lock()
	dashboardCache = &response
	dashboardMu.Unlock()

	c.JSON(http.StatusOK, response)
}
