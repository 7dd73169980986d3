package models

import "time"

// PaymentRequest carries everything the payment collaborator needs for one attempt.
type PaymentRequest struct {
	UserID          string
	PhoneNumber     string
	Amount          float64
	Currency        string
	ReferenceCode   string
	Description     string
	AppointmentDate string
	AppointmentTime string
	Metadata        map[string]string
}

// Invoice is the durable record of a payment attempt.
type Invoice struct {
	InvoiceID string    `bson:"invoice_id" json:"invoiceId"`
	UserID    string    `bson:"user_id" json:"userId"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	Status    string    `bson:"status" json:"status"`
	PaymentID string    `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
	Error     string    `bson:"error,omitempty" json:"error,omitempty"`
}
