package user

import (
	"fmt"

	"calmora/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetUserByID retrieves a patient account by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if userRec == nil {
		return nil, fmt.Errorf("user not found")
	}
	return userRec, nil
}

// GetUserByEmail retrieves a patient account by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if userRec == nil {
		return nil, fmt.Errorf("user not found")
	}
	return userRec, nil
}

// UpdateUser applies mutable profile fields.
func (s *DefaultUserService) UpdateUser(req models.UserUpdateRequest) (*models.User, error) {
	updateDoc := bson.M{}
	if req.Username != "" {
		updateDoc["username"] = req.Username
	}
	if req.PhoneNumber != "" {
		updateDoc["phone_number"] = req.PhoneNumber
	}
	if len(updateDoc) > 0 {
		if err := s.Repo.UpdateSetDocument(req.ID, updateDoc); err != nil {
			return nil, err
		}
	}
	return s.GetUserByID(req.ID)
}

// DeleteUser removes a patient account.
func (s *DefaultUserService) DeleteUser(userID string) error {
	return s.Repo.Delete(userID)
}

// GetAllUsers lists every patient account (admin).
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// SetUserActive toggles a patient account's active flag (admin).
func (s *DefaultUserService) SetUserActive(userID string, active bool) error {
	return s.Repo.UpdateSetDocument(userID, bson.M{"active": active})
}
