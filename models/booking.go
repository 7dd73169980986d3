package models

import "time"

// Booking statuses.
const (
	BookingStatusPaid      = "paid"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a confirmed session record.
type Booking struct {
	ID          string    `bson:"id" json:"id"`                       // Unique booking identifier (UUID)
	TherapistID string    `bson:"therapist_id" json:"therapistId"`    // Therapist who was booked
	UserID      string    `bson:"user_id" json:"userId"`              // Patient who made the booking
	Date        string    `bson:"date" json:"date"`                   // Session date in "2006-01-02" format
	Slot        string    `bson:"slot" json:"slot"`                   // Time-of-day label, e.g. "9:00"
	Amount      float64   `bson:"amount" json:"amount"`               // Session fee charged
	Status      string    `bson:"status" json:"status"`               // "paid" or "cancelled"
	Invoice     Invoice   `bson:"invoice,omitempty" json:"invoice"`   // Payment record for the session
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// BookingConfirmation is the hand-off context for the confirmation step.
type BookingConfirmation struct {
	BookingID string              `json:"bookingId"`
	Therapist TherapistPublicView `json:"therapist"`
	Date      string              `json:"date"`
	Slot      string              `json:"slot"`
	Invoice   Invoice             `json:"invoice"`
}
