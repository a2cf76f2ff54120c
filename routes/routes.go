package routes

import (
	"net/http"
	"time"

	"pawbooker/handlers"
	"pawbooker/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		services := api.Group("/services")
		{
			services.GET("", hb.Catalog.ListServices)
			services.GET("/:id", hb.Catalog.GetServiceByID)
		}

		availability := api.Group("/availability")
		{
			availability.GET("", hb.Availability.GetOpenIntervals)
			availability.GET("/first-slot", hb.Availability.GetFirstOpenSlot)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("/hold", hb.Booking.HoldSlot)
			bookings.POST("/:id/confirm", hb.Booking.ConfirmBooking)
			bookings.POST("/:id/cancel", hb.Booking.CancelBooking)
		}

		admin := api.Group("/admin")
		{
			admin.GET("/blackouts", hb.Admin.ListBlackouts)
			admin.POST("/blackouts", hb.Admin.CreateBlackout)
			admin.DELETE("/blackouts/:id", hb.Admin.DeleteBlackout)
			admin.GET("/rules", hb.Admin.ListRules)
			admin.PUT("/rules/:dayOfWeek", hb.Admin.UpsertRule)
			admin.POST("/services", hb.Admin.CreateService)
		}
	}

	RegisterHealthRoute(r)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}
