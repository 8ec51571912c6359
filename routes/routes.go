package routes

import (
	"os"
	"strings"

	"laundrypro-backend/config"
	"laundrypro-backend/controllers"
	"laundrypro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// Public surface: the booking form and the quote widget
	r.POST("/bookings", controllers.CreateBooking)
	r.GET("/pricing/quote", controllers.GetQuote)
	r.GET("/services", controllers.GetServices)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Service routes
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.GET("", controllers.GetBookings)
			bookings.GET("/overview", controllers.GetBookingOverview)
			bookings.PUT("/:id", controllers.UpdateBooking)
			bookings.PATCH("/:id/status", controllers.UpdateBookingStatus)
			bookings.PATCH("/:id/payment-method", controllers.UpdateBookingPaymentMethod)
		}

		// Pricing table for the admin UI
		api.GET("/pricing", controllers.GetPricingTable)

		// Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports", reportController.GetReportAnalytics)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
