package routes

import (
	"net/http"
	"time"

	"calmora/handlers"
	"calmora/middleware"
	"calmora/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers patient endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/id/:id", hb.GetUserByIDHandler)
		api.PUT("/update", hb.UpdateUserHandler)
		api.PUT("/password", hb.UpdateUserPasswordHandler)
		api.DELETE("/delete", hb.DeleteUserHandler)
		api.DELETE("/revoke", hb.RevokeUserAuthTokenHandler)
	}
}

// RegisterTherapistRoutes registers therapist management endpoints.
func RegisterTherapistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/therapists")
	{
		// Public endpoints (registration, login, directory).
		api.POST("/register", hb.RegisterTherapistHandler)
		api.POST("/login", hb.AuthenticateTherapistHandler)
		api.GET("", hb.SearchTherapistsHandler)
		api.GET("/id/:id", hb.GetTherapistProfileHandler)

		// Endpoints that modify therapist data require strict authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthTherapistMiddleware(hb.TherapistRepo))
		protected.PATCH("/update", hb.UpdateTherapistHandler)
		protected.DELETE("/delete", hb.DeleteTherapistHandler)
		protected.DELETE("/revoke", hb.RevokeTherapistAuthTokenHandler)
		protected.GET("/patients", hb.GetPatientRosterHandler)
		protected.GET("/bookings", hb.ListTherapistBookings)
		protected.GET("/schedule", hb.GetTherapistScheduleHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		bookingGroup.GET("/slots", hb.GetAvailableSlots)
		bookingGroup.POST("/confirm", hb.ConfirmBooking)
		bookingGroup.GET("/mine", hb.ListMyBookings)
		bookingGroup.DELETE("/:id", hb.CancelBooking)
	}
}

// RegisterMessageRoutes sets up patient-therapist messaging endpoints.
func RegisterMessageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	patientGroup := r.Group("/api/messages")
	{
		patientGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		patientGroup.POST("", hb.SendPatientMessageHandler)
		patientGroup.GET("/with/:therapistID", hb.GetPatientConversationHandler)
	}

	therapistGroup := r.Group("/api/therapist-messages")
	{
		therapistGroup.Use(middleware.JWTAuthTherapistMiddleware(hb.TherapistRepo))
		therapistGroup.POST("", hb.SendTherapistMessageHandler)
		therapistGroup.GET("/with/:userID", hb.GetTherapistConversationHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/users", hb.AdminHandler.GetAllUsersHandler)
		adminGroup.GET("/therapists", hb.AdminHandler.GetAllTherapistsHandler)
		adminGroup.GET("/bookings", hb.AdminHandler.GetAllBookingsHandler)
		adminGroup.DELETE("/bookings/:id", hb.AdminHandler.CancelBookingHandler)
		adminGroup.PUT("/users/:id/active", hb.AdminHandler.SetUserActiveHandler)
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
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterTherapistRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterMessageRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
