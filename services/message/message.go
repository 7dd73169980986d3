package message

import (
	"fmt"
	"strings"

	messageRepo "calmora/database/repository/message"
	"calmora/models"

	"github.com/google/uuid"
)

// MessageService exposes patient-therapist direct messaging.
type MessageService interface {
	// Send records one message; sender is "patient" or "therapist".
	Send(userID, therapistID, sender, body string) (*models.Message, error)
	// GetConversation lists the full thread, oldest first, marking the
	// reader's side as read.
	GetConversation(userID, therapistID, reader string) ([]models.Message, error)
}

// DefaultMessageService is the production implementation.
type DefaultMessageService struct {
	Repo messageRepo.MessageRepository
}

// Send records one message in the conversation.
func (s *DefaultMessageService) Send(userID, therapistID, sender, body string) (*models.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("message body cannot be empty")
	}
	if sender != "patient" && sender != "therapist" {
		return nil, fmt.Errorf("invalid sender %q", sender)
	}

	msg := &models.Message{
		ID:          uuid.New().String(),
		UserID:      userID,
		TherapistID: therapistID,
		Sender:      sender,
		Body:        body,
	}
	if err := s.Repo.Create(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// GetConversation lists the thread and marks the reader's side as read.
func (s *DefaultMessageService) GetConversation(userID, therapistID, reader string) ([]models.Message, error) {
	messages, err := s.Repo.GetConversation(userID, therapistID)
	if err != nil {
		return nil, err
	}
	if reader == "patient" || reader == "therapist" {
		if err := s.Repo.MarkRead(userID, therapistID, reader); err != nil {
			return nil, err
		}
	}
	return messages, nil
}
