package models

import "time"

// Therapist represents a clinician offering bookable sessions.
type Therapist struct {
	ID            string         `bson:"id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	Email         string         `bson:"email" json:"email"`
	PhoneNumber   string         `bson:"phone_number" json:"phoneNumber"`
	PasswordHash  string         `bson:"password_hash" json:"-"`
	TokenHash     string         `bson:"token_hash,omitempty" json:"-"`
	Specialty     string         `bson:"specialty" json:"specialty"`
	Bio           string         `bson:"bio,omitempty" json:"bio,omitempty"`
	SessionFee    float64        `bson:"session_fee" json:"sessionFee"`
	Active        bool           `bson:"active" json:"active"`
	Notifications []Notification `bson:"notifications,omitempty" json:"notifications,omitempty"`
	CreatedAt     time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updatedAt"`
}

// TherapistRegistrationData is the payload for onboarding a therapist.
type TherapistRegistrationData struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	PhoneNumber string  `json:"phoneNumber" binding:"required"`
	Password    string  `json:"password" binding:"required,min=8"`
	Specialty   string  `json:"specialty" binding:"required"`
	Bio         string  `json:"bio"`
	SessionFee  float64 `json:"sessionFee" binding:"required"`
}

// TherapistUpdateRequest carries mutable profile fields. Absent fields are
// left untouched.
type TherapistUpdateRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Specialty   string   `json:"specialty,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	SessionFee  *float64 `json:"sessionFee,omitempty"`
}

// TherapistPublicView is the directory representation exposed to patients.
type TherapistPublicView struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	Bio        string  `json:"bio,omitempty"`
	SessionFee float64 `json:"sessionFee"`
}

// PublicView strips credentials and contact details for directory listings.
func (t Therapist) PublicView() TherapistPublicView {
	return TherapistPublicView{
		ID:         t.ID,
		Name:       t.Name,
		Specialty:  t.Specialty,
		Bio:        t.Bio,
		SessionFee: t.SessionFee,
	}
}
