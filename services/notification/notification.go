package notification

import (
	"context"
	"fmt"
	"time"

	therapistRepo "calmora/database/repository/therapist"
	userRepo "calmora/database/repository/user"
	"calmora/models"

	"github.com/google/uuid"
)

// NotificationService delivers in-app notifications by appending them to
// the recipient's document.
type NotificationService interface {
	NotifyUser(ctx context.Context, userID, title, body string, data map[string]interface{}) error
	NotifyTherapist(ctx context.Context, therapistID, title, body string, data map[string]interface{}) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users      userRepo.UserRepository
	Therapists therapistRepo.TherapistRepository
}

func NewDefaultNotificationService(
	users userRepo.UserRepository,
	therapists therapistRepo.TherapistRepository,
) (*DefaultNotificationService, error) {
	if users == nil || therapists == nil {
		return nil, fmt.Errorf("notification service initialization error: user or therapist repository is nil")
	}
	return &DefaultNotificationService{
		Users:      users,
		Therapists: therapists,
	}, nil
}

func buildNotification(title, body string, data map[string]interface{}) models.Notification {
	return models.Notification{
		ID:        uuid.New().String(),
		Type:      title,
		Message:   body,
		Data:      data,
		CreatedAt: time.Now(),
		Read:      false,
	}
}

// NotifyUser appends an in-app notification to a patient's document.
func (s *DefaultNotificationService) NotifyUser(ctx context.Context, userID, title, body string, data map[string]interface{}) error {
	if err := s.Users.PushNotification(userID, buildNotification(title, body, data)); err != nil {
		return fmt.Errorf("NotifyUser: could not notify user %s: %w", userID, err)
	}
	return nil
}

// NotifyTherapist appends an in-app notification to a therapist's document.
func (s *DefaultNotificationService) NotifyTherapist(ctx context.Context, therapistID, title, body string, data map[string]interface{}) error {
	if err := s.Therapists.PushNotification(therapistID, buildNotification(title, body, data)); err != nil {
		return fmt.Errorf("NotifyTherapist: could not notify therapist %s: %w", therapistID, err)
	}
	return nil
}
