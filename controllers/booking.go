// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"laundrypro-backend/config"
	"laundrypro-backend/models"
	"laundrypro-backend/services"
	"laundrypro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBookingInput is the public booking form payload.
type CreateBookingInput struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	ServiceID      string `json:"service_id" binding:"required"`
	CollectionDate string `json:"collection_date" binding:"required"`
	DepartureDate  string `json:"departure_date" binding:"required"`
	Notes          string `json:"notes"`
}

// UpdateBookingInput is the partial field edit payload. Status, price and
// payment method have their own endpoints and are not editable here.
type UpdateBookingInput struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Phone          *string `json:"phone"`
	ServiceID      *string `json:"service_id"`
	CollectionDate *string `json:"collection_date"`
	DepartureDate  *string `json:"departure_date"`
	Notes          *string `json:"notes"`
}

// UpdateStatusInput carries an admin status transition.
type UpdateStatusInput struct {
	Status     string   `json:"status" binding:"required"`
	TotalPrice *float64 `json:"total_price"`
	WeightKg   *float64 `json:"weight_kg"`
}

// UpdatePaymentMethodInput records how a completed booking was settled.
type UpdatePaymentMethodInput struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// CreateBooking handles the public booking form. No auth; status starts
// pending.
func CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}
	if !utils.IsCalendarDate(input.CollectionDate) || !utils.IsCalendarDate(input.DepartureDate) {
		utils.RespondWithError(c, http.StatusBadRequest, "Dates must be YYYY-MM-DD")
		return
	}
	if !utils.ValidateDateOrder(input.CollectionDate, input.DepartureDate) {
		utils.RespondWithError(c, http.StatusBadRequest, "Collection date must be on or before departure date")
		return
	}

	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	booking := models.Booking{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Phone:          input.Phone,
		ServiceID:      serviceUUID,
		CollectionDate: input.CollectionDate,
		DepartureDate:  input.DepartureDate,
		Status:         models.StatusPending,
		Notes:          input.Notes,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	booking.Service = service
	services.Events.Publish(services.Event{Type: services.EventBookingChanged})
	c.JSON(http.StatusCreated, booking)
}

// GetBookings lists bookings with their service resolved. An optional
// ?date=YYYY-MM-DD query filters by collection date.
func GetBookings(c *gin.Context) {
	query := config.DB.Preload("Service").Order("collection_date desc, created_at desc")

	if date := c.Query("date"); date != "" {
		if !utils.IsCalendarDate(date) {
			utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		query = query.Where("collection_date = ?", date)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookingOverview returns the month-filtered, searched, grouped and
// sorted booking view. ?month=YYYY-MM defaults to the current month, ?q= is
// the customer-name search.
func GetBookingOverview(c *gin.Context) {
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

	groups := services.BuildOverview(bookings, selected.Year(), selected.Month(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"month":  month,
		"groups": groups,
	})
}

// UpdateBookingStatus applies an admin status transition with its derived
// effects: entering processing recomputes the price from the weight,
// entering completed stamps the completion time.
func UpdateBookingStatus(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	status, err := models.ParseBookingStatus(input.Status)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Service").First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := services.ApplyStatusChange(&booking, status, input.TotalPrice, input.WeightKg, time.Now()); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking status")
		return
	}

	services.Events.Publish(services.Event{Type: services.EventBookingChanged})
	c.JSON(http.StatusOK, booking)
}

// UpdateBookingPaymentMethod records card/cash settlement. Idempotent; never
// touches status or the completion timestamp.
func UpdateBookingPaymentMethod(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdatePaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	method, err := models.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Service").First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := services.SetPaymentMethod(&booking, method); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Model(&booking).Update("payment_method", method).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update payment method")
		return
	}

	services.Events.Publish(services.Event{Type: services.EventBookingChanged})
	c.JSON(http.StatusOK, booking)
}

// UpdateBooking applies a partial edit to booking core fields. The
// pending-only restriction stays a client policy; the API accepts edits in
// any status.
func UpdateBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Service").First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.FirstName != nil {
		booking.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		booking.LastName = *input.LastName
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
			return
		}
		booking.Phone = *input.Phone
	}
	if input.ServiceID != nil {
		serviceUUID, err := uuid.Parse(*input.ServiceID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
			return
		}
		var service models.Service
		if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found")
			return
		}
		booking.ServiceID = serviceUUID
		booking.Service = service
	}
	if input.CollectionDate != nil {
		if !utils.IsCalendarDate(*input.CollectionDate) {
			utils.RespondWithError(c, http.StatusBadRequest, "Dates must be YYYY-MM-DD")
			return
		}
		booking.CollectionDate = *input.CollectionDate
	}
	if input.DepartureDate != nil {
		if !utils.IsCalendarDate(*input.DepartureDate) {
			utils.RespondWithError(c, http.StatusBadRequest, "Dates must be YYYY-MM-DD")
			return
		}
		booking.DepartureDate = *input.DepartureDate
	}
	if !utils.ValidateDateOrder(booking.CollectionDate, booking.DepartureDate) {
		utils.RespondWithError(c, http.StatusBadRequest, "Collection date must be on or before departure date")
		return
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	services.Events.Publish(services.Event{Type: services.EventBookingChanged})
	c.JSON(http.StatusOK, booking)
}
