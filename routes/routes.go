package routes

import (
	"net/http"
	"time"

	"safesched/handlers"
	"safesched/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSchedulingRoutes sets up the endpoints for the scheduling engine.
func RegisterSchedulingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	schedGroup := r.Group("/api/schedule")
	{
		schedGroup.POST("/session", hb.InitiateSession)
		schedGroup.PUT("/session/:sessionID", hb.UpdateSession)
		schedGroup.POST("/confirm", hb.ConfirmBooking)
		schedGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterCalendarRoutes registers participant calendar endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.GET("/participants", hb.ListParticipants)
		api.GET("/:participant", hb.GetAgenda)
		api.POST("/:participant/busy", hb.AddBusyInterval)
	}
}

// RegisterBookingLogRoutes registers the booking log endpoint.
func RegisterBookingLogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.ListBookings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterSchedulingRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterBookingLogRoutes(r, hb)
}
