package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"eventdeck/internal/container"
	"eventdeck/internal/handlers"
	"eventdeck/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	// Set Gin mode for production
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "eventdeck-api",
			})
		})
	}

	eventRoutes := v1.Group("/events")
	{
		eventRoutes.POST("/", handlers.CreateEvent(container.EventService))
		eventRoutes.GET("/", handlers.ListEvents(container.EventService))
		eventRoutes.GET("/featured", handlers.FeaturedEvents())
		eventRoutes.GET("/:slug", handlers.GetEventBySlug(container.EventService))
		eventRoutes.PATCH("/id/:id", handlers.UpdateEvent(container.EventService))
		eventRoutes.DELETE("/id/:id", handlers.DeleteEvent(container.EventService))
	}

	bookingRoutes := v1.Group("/bookings")
	{
		bookingRoutes.POST("/", handlers.CreateBooking(container.BookingService))
		bookingRoutes.GET("/event/:id", handlers.ListBookingsByEvent(container.BookingService))
	}

	return r
}
