package userRepo

import (
	"calmora/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for patient data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// UpdateSetDocument applies a $set update to the user document.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// PushNotification appends an in-app notification to the user document.
	PushNotification(id string, notification models.Notification) error
}
