package bookingRepo

import "calmora/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings.
	GetAll() ([]models.Booking, error)
	// GetByUser retrieves all bookings made by a patient, newest first.
	GetByUser(userID string) ([]models.Booking, error)
	// GetByTherapist retrieves all bookings for a therapist, newest first.
	GetByTherapist(therapistID string) ([]models.Booking, error)
	// GetByTherapistAndDate retrieves a therapist's bookings on a given date.
	GetByTherapistAndDate(therapistID, date string) ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// UpdateStatus changes a booking's status.
	UpdateStatus(id, status string) error
}
