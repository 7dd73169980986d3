package handlers

import (
	therapistRepo "calmora/database/repository/therapist"
	userRepo "calmora/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every route handler plus the repositories the
// auth middleware needs.
type HandlerBundle struct {
	UserRepo      userRepo.UserRepository
	TherapistRepo therapistRepo.TherapistRepository

	// Patient endpoints.
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	GetUserByIDHandler         gin.HandlerFunc
	UpdateUserHandler          gin.HandlerFunc
	UpdateUserPasswordHandler  gin.HandlerFunc
	DeleteUserHandler          gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc

	// Therapist endpoints.
	RegisterTherapistHandler        gin.HandlerFunc
	AuthenticateTherapistHandler    gin.HandlerFunc
	SearchTherapistsHandler         gin.HandlerFunc
	GetTherapistProfileHandler      gin.HandlerFunc
	UpdateTherapistHandler          gin.HandlerFunc
	DeleteTherapistHandler          gin.HandlerFunc
	RevokeTherapistAuthTokenHandler gin.HandlerFunc
	GetPatientRosterHandler         gin.HandlerFunc
	GetTherapistScheduleHandler     gin.HandlerFunc

	// Booking endpoints.
	GetAvailableSlots      gin.HandlerFunc
	ConfirmBooking         gin.HandlerFunc
	ListMyBookings         gin.HandlerFunc
	ListTherapistBookings  gin.HandlerFunc
	CancelBooking          gin.HandlerFunc

	// Messaging endpoints.
	SendPatientMessageHandler       gin.HandlerFunc
	SendTherapistMessageHandler     gin.HandlerFunc
	GetPatientConversationHandler   gin.HandlerFunc
	GetTherapistConversationHandler gin.HandlerFunc

	// Admin endpoints.
	AdminHandler *AdminHandler
}
