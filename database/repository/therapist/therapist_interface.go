package therapistRepo

import (
	"calmora/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TherapistRepository defines methods for therapist data access.
type TherapistRepository interface {
	// GetByID retrieves a therapist by its unique ID.
	GetByID(id string) (*models.Therapist, error)
	// GetByEmail retrieves a therapist by its email address.
	GetByEmail(email string) (*models.Therapist, error)
	// GetAll retrieves all therapists.
	GetAll() ([]models.Therapist, error)
	// Search retrieves active therapists matching an optional specialty and name fragment.
	Search(specialty, name string) ([]models.Therapist, error)
	// Create inserts a new therapist record.
	Create(therapist *models.Therapist) error
	// Delete removes a therapist record by its ID.
	Delete(id string) error
	// UpdateSetDocument applies a $set update to the therapist document.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// PushNotification appends an in-app notification to the therapist document.
	PushNotification(id string, notification models.Notification) error
}
