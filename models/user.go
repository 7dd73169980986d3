package models

import "time"

// User represents a patient account on the portal.
type User struct {
	ID            string         `bson:"id" json:"id"`
	Username      string         `bson:"username" json:"username"`
	Email         string         `bson:"email" json:"email"`
	PhoneNumber   string         `bson:"phone_number" json:"phoneNumber"`
	PasswordHash  string         `bson:"password_hash" json:"-"`
	TokenHash     string         `bson:"token_hash,omitempty" json:"-"`
	Active        bool           `bson:"active" json:"active"`
	Notifications []Notification `bson:"notifications,omitempty" json:"notifications,omitempty"`
	CreatedAt     time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updatedAt"`
}

// UserRegistrationData is the payload for creating a patient account.
type UserRegistrationData struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
}

// UserUpdateRequest carries mutable profile fields.
type UserUpdateRequest struct {
	ID          string `json:"id"`
	Username    string `json:"username,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
