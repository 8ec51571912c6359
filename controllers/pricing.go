// controllers/pricing.go
package controllers

import (
	"net/http"
	"strconv"

	"laundrypro-backend/services"
	"laundrypro-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetPricingTable exposes the rate table: every priced service with its
// tiers and overall price span. Feeds the admin pricing page.
func GetPricingTable(c *gin.Context) {
	type entry struct {
		Name  string                `json:"name"`
		Tiers []services.WeightTier `json:"tiers"`
		Min   string                `json:"min"`
		Max   string                `json:"max"`
	}

	var table []entry
	for _, name := range services.ServiceNames() {
		tiers, _ := services.TiersFor(name)
		min, max, _ := services.PriceSpan(name)
		table = append(table, entry{
			Name:  name,
			Tiers: tiers,
			Min:   services.FormatPrice(min),
			Max:   services.FormatPrice(max),
		})
	}

	c.JSON(http.StatusOK, table)
}

// GetQuote is the public quote widget: ?service=&weight= in, a flat tier
// price out. A zero price means the service or weight is outside the table;
// that is not an error here.
func GetQuote(c *gin.Context) {
	serviceName := c.Query("service")
	if serviceName == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "service is required")
		return
	}

	weight, err := strconv.ParseFloat(c.Query("weight"), 64)
	if err != nil || weight <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "weight must be a positive number")
		return
	}

	price := services.CalculatePrice(serviceName, weight)
	c.JSON(http.StatusOK, gin.H{
		"service":   serviceName,
		"weight_kg": weight,
		"price":     price,
		"display":   services.FormatPrice(price),
	})
}
