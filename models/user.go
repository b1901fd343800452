package models

import "time"

// User represents a registered account. Accounts belong to teens; a guardian
// email may be attached for contact purposes but has no login of its own.
type User struct {
	ID            string    `bson:"id" json:"id"`
	FullName      string    `bson:"full_name" json:"fullName"`
	Email         string    `bson:"email" json:"email"`
	PasswordHash  string    `bson:"password_hash" json:"-"`
	BirthDate     string    `bson:"birth_date" json:"birthDate"` // "YYYY-MM-DD"
	GuardianEmail string    `bson:"guardian_email,omitempty" json:"guardianEmail,omitempty"`
	FCMToken      string    `bson:"fcm_token,omitempty" json:"-"`
	TokenHash     string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserRegistrationData is the payload accepted at signup.
type UserRegistrationData struct {
	FullName      string `json:"fullName" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
	BirthDate     string `json:"birthDate" binding:"required"`
	GuardianEmail string `json:"guardianEmail"`
}

// UserUpdateRequest carries the mutable profile fields.
type UserUpdateRequest struct {
	ID            string  `json:"id"`
	FullName      *string `json:"fullName,omitempty"`
	GuardianEmail *string `json:"guardianEmail,omitempty"`
	FCMToken      *string `json:"fcmToken,omitempty"`
}
