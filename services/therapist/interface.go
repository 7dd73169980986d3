package therapist

import (
	bookingRepo "calmora/database/repository/booking"
	therapistRepo "calmora/database/repository/therapist"
	userRepo "calmora/database/repository/user"
	"calmora/models"
)

// TherapistService defines therapist account and directory operations.
type TherapistService interface {
	// Registration & authentication
	RegisterTherapist(data models.TherapistRegistrationData) (*AuthResponse, error)
	AuthenticateTherapist(email, password string) (*AuthResponse, error)
	RevokeTherapistAuthToken(therapistID string) error

	// Directory (patient-facing)
	SearchTherapists(specialty, name string) ([]models.TherapistPublicView, error)
	GetTherapistProfile(therapistID string) (*models.TherapistPublicView, error)

	// Account management
	GetTherapistByID(therapistID string) (*models.Therapist, error)
	UpdateTherapist(req models.TherapistUpdateRequest) (*models.Therapist, error)
	DeleteTherapist(therapistID string) error

	// Practice management
	GetPatientRoster(therapistID string) ([]models.User, error)
	GetSchedule(therapistID, date string) ([]models.Booking, error)

	// Admin / utility
	GetAllTherapists() ([]models.Therapist, error)
}

// DefaultTherapistService is the production implementation.
type DefaultTherapistService struct {
	Repo     therapistRepo.TherapistRepository
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
}

// AuthResponse contains the therapist's ID, token, and additional details.
type AuthResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
	Token     string `json:"token"`
}
