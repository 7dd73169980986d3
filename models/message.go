package models

import "time"

// Message is one direct message between a patient and a therapist.
type Message struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"userId"`
	TherapistID string    `bson:"therapist_id" json:"therapistId"`
	Sender      string    `bson:"sender" json:"sender"` // "patient" or "therapist"
	Body        string    `bson:"body" json:"body"`
	Read        bool      `bson:"read" json:"read"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
