package routes

import (
	"time"

	"glowdesk/handlers"
	"glowdesk/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/services", handlers.ListServicesHandler)
	}
}

// RegisterAvailabilityRoutes registers the availability and pricing
// endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/availability", handlers.AvailabilityHandler)
		api.GET("/availability/days", handlers.DaysAvailabilityHandler)
		api.POST("/quote", handlers.QuoteHandler)
	}
}

// RegisterBookingRoutes registers the reservation endpoints. Cancellation
// is admin only.
func RegisterBookingRoutes(r *gin.Engine) {
	api := r.Group("/api/bookings")
	{
		api.POST("", handlers.CreateBookingHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.DELETE("/:id", handlers.CancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterCatalogRoutes(r)
	RegisterAvailabilityRoutes(r)
	RegisterBookingRoutes(r)
	RegisterHealthRoute(r)
}
