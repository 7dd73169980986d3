package messageRepo

import "calmora/models"

// MessageRepository defines methods for direct-message data access.
type MessageRepository interface {
	// Create inserts a new message.
	Create(message *models.Message) error
	// GetConversation retrieves all messages between a patient and a therapist, oldest first.
	GetConversation(userID, therapistID string) ([]models.Message, error)
	// MarkRead marks every message in a conversation addressed to the given side as read.
	MarkRead(userID, therapistID, recipient string) error
}
