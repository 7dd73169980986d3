package booking

import (
	"context"

	"calmora/models"
)

// AvailabilityResult is tomorrow's bookable view: the session date and the
// slots not yet claimed today.
type AvailabilityResult struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// ConfirmRequest carries everything needed to confirm one booking.
type ConfirmRequest struct {
	UserID      string `json:"-"`
	TherapistID string `json:"therapistId" binding:"required"`
	Slot        string `json:"slot" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
}

// BookingService exposes the booking engine to handlers.
type BookingService interface {
	// AvailableSlots computes tomorrow's unclaimed slots.
	AvailableSlots() (*AvailabilityResult, error)
	// Confirm runs one booking attempt end to end: validate, charge,
	// claim the slot, persist the booking, and schedule the reminder.
	Confirm(ctx context.Context, req ConfirmRequest) (*models.BookingConfirmation, error)
	// GetBooking retrieves a booking by ID.
	GetBooking(id string) (*models.Booking, error)
	// ListForUser lists a patient's bookings.
	ListForUser(userID string) ([]models.Booking, error)
	// ListForTherapist lists a therapist's bookings.
	ListForTherapist(therapistID string) ([]models.Booking, error)
	// ListAll lists every booking (admin).
	ListAll() ([]models.Booking, error)
	// Cancel marks a booking cancelled. The day's slot claim is not
	// released; the ledger is a daily convenience cache only.
	Cancel(id, userID string) error
}
