package models

import "time"

// Notification is an in-app notification embedded on a user or therapist document.
type Notification struct {
	ID        string                 `bson:"id" json:"id"`
	Type      string                 `bson:"type" json:"type"`
	Message   string                 `bson:"message" json:"message"`
	Data      map[string]interface{} `bson:"data,omitempty" json:"data,omitempty"`
	CreatedAt time.Time              `bson:"created_at" json:"createdAt"`
	Read      bool                   `bson:"read" json:"read"`
}

// ReminderPayload is the asynq task payload for a session reminder.
type ReminderPayload struct {
	ReminderID string `json:"reminderId"`
	Target     string `json:"target"` // "user" or "therapist"
	ID         string `json:"id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	FireDate   string `json:"fireDate"`
}
