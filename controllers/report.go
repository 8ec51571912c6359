// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"laundrypro-backend/config"
	"laundrypro-backend/models"
	"laundrypro-backend/services"
	"laundrypro-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportController handles all reporting functions
type ReportController struct{}

// AnalyticsSummary represents the analytics data for one calendar month
type AnalyticsSummary struct {
	Month         string                `json:"month"`
	Stats         services.BookingStats `json:"stats"`
	PreviousMonth services.BookingStats `json:"previousMonth"`
	RevenueGrowth float64               `json:"revenueGrowth"`
	BookingGrowth float64               `json:"bookingGrowth"`
}

// GetReportAnalytics folds the booking set into the monthly analytics view.
// ?month=YYYY-MM defaults to the current month.
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	selected, err := time.Parse("2006-01", month)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "month must be YYYY-MM")
		return
	}

	var bookings []models.Booking
	if err := config.DB.Preload("Service").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	current := services.ComputeStats(
		services.FilterByMonth(bookings, selected.Year(), selected.Month()))

	prev := selected.AddDate(0, -1, 0)
	previous := services.ComputeStats(
		services.FilterByMonth(bookings, prev.Year(), prev.Month()))

	summary := AnalyticsSummary{
		Month:         month,
		Stats:         current,
		PreviousMonth: previous,
		RevenueGrowth: rc.calculateGrowthPercentage(current.TotalRevenue, previous.TotalRevenue),
		BookingGrowth: rc.calculateGrowthPercentage(float64(current.TotalBookings), float64(previous.TotalBookings)),
	}

	c.JSON(http.StatusOK, summary)
}

func (rc *ReportController) calculateGrowthPercentage(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return ((current - previous) / previous) * 100
}
