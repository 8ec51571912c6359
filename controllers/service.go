// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"laundrypro-backend/config"
	"laundrypro-backend/models"
	"laundrypro-backend/services"
	"laundrypro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name  string `json:"name" binding:"required"`
	Price string `json:"price" binding:"required"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name  *string `json:"name"`
	Price *string `json:"price"`
}

// CreateService creates a new laundry service
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePriceString(input.Price) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price: expected an amount like R170 or a range like R170-R470")
		return
	}

	service := models.Service{
		Name:  input.Name,
		Price: input.Price,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	services.Events.Publish(services.Event{Type: services.EventServiceChanged})
	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves all services
func GetServices(c *gin.Context) {
	var all []models.Service
	if err := config.DB.Order("created_at desc").Find(&all).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, all)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
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

	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
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

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Price != nil {
		if !utils.ValidatePriceString(*input.Price) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid price: expected an amount like R170 or a range like R170-R470")
			return
		}
		service.Price = *input.Price
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	services.Events.Publish(services.Event{Type: services.EventServiceChanged})
	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service. The delete is hard: bookings that
// reference the service are left dangling.
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Delete(&models.Service{}, "id = ?", serviceUUID)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	services.Events.Publish(services.Event{Type: services.EventServiceChanged})
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
