package user

import (
	userRepo "calmora/database/repository/user"
	"calmora/models"
)

// UserService defines patient account operations.
type UserService interface {
	// Registration & authentication
	RegisterUser(data models.UserRegistrationData) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	RevokeUserAuthToken(userID string) error

	// Account management
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(req models.UserUpdateRequest) (*models.User, error)
	UpdateUserPassword(userID, currentPassword, newPassword string) error
	DeleteUser(userID string) error

	// Admin / utility
	GetAllUsers() ([]models.User, error)
	SetUserActive(userID string, active bool) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Token       string `json:"token"`
}
