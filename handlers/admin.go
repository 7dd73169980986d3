// File: calmora/handlers/admin.go
package handlers

import (
	"errors"
	"net/http"

	"calmora/services/booking"
	"calmora/services/therapist"
	"calmora/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	UserService      user.UserService
	TherapistService therapist.TherapistService
	BookingService   booking.BookingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(us user.UserService, ts therapist.TherapistService, bs booking.BookingService) *AdminHandler {
	return &AdminHandler{
		UserService:      us,
		TherapistService: ts,
		BookingService:   bs,
	}
}

// GetAllUsersHandler returns all patients (with sensitive fields excluded).
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.UserService.GetAllUsers()
	if err != nil {
		zap.L().Error("Failed to fetch all users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetAllTherapistsHandler returns all therapists (with sensitive fields excluded).
func (ah *AdminHandler) GetAllTherapistsHandler(c *gin.Context) {
	therapists, err := ah.TherapistService.GetAllTherapists()
	if err != nil {
		zap.L().Error("Failed to fetch all therapists", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch therapists"})
		return
	}
	c.JSON(http.StatusOK, therapists)
}

// GetAllBookingsHandler returns every booking with its invoice.
func (ah *AdminHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := ah.BookingService.ListAll()
	if err != nil {
		zap.L().Error("Failed to fetch all bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CancelBookingHandler cancels any booking (no ownership check).
func (ah *AdminHandler) CancelBookingHandler(c *gin.Context) {
	if err := ah.BookingService.Cancel(c.Param("id"), ""); err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// SetUserActiveHandler toggles a patient account's active flag.
func (ah *AdminHandler) SetUserActiveHandler(c *gin.Context) {
	var input struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := ah.UserService.SetUserActive(c.Param("id"), input.Active); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
