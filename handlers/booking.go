package handlers

import (
	"errors"
	"net/http"

	"calmora/services/booking"
	"calmora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine endpoints.
type BookingHandler struct {
	Service booking.BookingService
	logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, logger: logger}
}

// GetAvailableSlots returns tomorrow's unclaimed slots.
func (h *BookingHandler) GetAvailableSlots(c *gin.Context) {
	result, err := h.Service.AvailableSlots()
	if err != nil {
		h.logger.Error("failed to compute available slots", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// ConfirmBooking runs one booking attempt for the authenticated patient.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input booking.ConfirmRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	input.UserID = c.GetString("userID")

	confirmation, err := h.Service.Confirm(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingContact),
			errors.Is(err, booking.ErrNoSlotSelected),
			errors.Is(err, booking.ErrSlotUnavailable):
			utils.JSONError(c, http.StatusUnprocessableEntity, "booking validation failed", err.Error())
		case errors.Is(err, booking.ErrTherapistNotFound):
			utils.JSONError(c, http.StatusNotFound, "therapist not found", err.Error())
		default:
			h.logger.Error("booking confirmation failed", zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "booking failed", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": confirmation})
}

// ListMyBookings lists the authenticated patient's bookings.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	bookings, err := h.Service.ListForUser(c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListTherapistBookings lists the authenticated therapist's bookings.
func (h *BookingHandler) ListTherapistBookings(c *gin.Context) {
	bookings, err := h.Service.ListForTherapist(c.GetString("therapistID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBooking cancels one of the authenticated patient's bookings.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	err := h.Service.Cancel(c.Param("id"), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "cancel failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
