package routes

import (
	"net/http"
	"time"

	"homeserve/handlers"
	"homeserve/middleware"
	"homeserve/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Users.RegisterHandler)
		api.POST("/login", hb.Users.LoginHandler)
	}
}

// RegisterUserRoutes registers the authenticated account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.Users.MeHandler)
		api.PUT("/location", hb.Users.UpdateLocationHandler)
		api.PUT("/push-token", hb.Users.UpdatePushTokenHandler)
		api.PUT("/working-hours", hb.Users.UpdateWorkingHoursHandler)
		api.POST("/profile-image", hb.Storage.UploadProfileImageHandler)
	}
}

// RegisterServiceRoutes registers the public service catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Services.ListServicesHandler)
		api.GET("/:id", hb.Services.GetServiceHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/availability", hb.Bookings.GetAvailabilityHandler)
		api.POST("", hb.Bookings.CreateBookingHandler)
		api.GET("", hb.Bookings.ListMyBookingsHandler)
		api.GET("/:id", hb.Bookings.GetBookingHandler)
		api.POST("/:id/cancel", hb.Bookings.CancelBookingHandler)
		api.POST("/:id/feedback", hb.Bookings.FeedbackHandler)

		// Provider-only lifecycle endpoints.
		provider := api.Group("")
		provider.Use(middleware.RequireRole(models.RoleProvider))
		provider.GET("/assigned", hb.Bookings.ListProviderBookingsHandler)
		provider.POST("/:id/start", hb.Bookings.StartBookingHandler)
		provider.POST("/:id/complete", hb.Bookings.CompleteBookingHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
		adminGroup.POST("/providers/:id/verify", hb.Admin.VerifyProviderHandler)
		adminGroup.POST("/bookings/:id/assign", hb.Admin.ManualAssignHandler)
		adminGroup.POST("/services", hb.Admin.CreateServiceHandler)
		adminGroup.PUT("/services/:id", hb.Admin.UpdateServiceHandler)
		adminGroup.DELETE("/services/:id", hb.Admin.DeleteServiceHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Homeserve"})
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
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
