package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered resident in the system
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Mobile       string             `bson:"mobile" json:"mobile"`
	City         string             `bson:"city" json:"city"`
	Points       int                `bson:"points" json:"points"`
	PasswordHash string             `bson:"passwordHash,omitempty" json:"-"`
	GoogleID     string             `bson:"googleId,omitempty" json:"-"`
	DeviceToken  string             `bson:"deviceToken,omitempty" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RegisterRequest represents the payload for email/password registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile" binding:"required,min=7,max=20"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	City     string `json:"city" binding:"required,min=2,max=80"`
}

// LoginRequest represents the payload for email/password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleAuthRequest represents the payload for Google sign-in
type GoogleAuthRequest struct {
	GoogleIDToken string `json:"googleIdToken" binding:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"accessToken"`
}

// UpdateProfileRequest represents the payload for updating a profile
type UpdateProfileRequest struct {
	Name   string `json:"name" binding:"omitempty,min=2,max=80"`
	Mobile string `json:"mobile" binding:"omitempty,min=7,max=20"`
	City   string `json:"city" binding:"omitempty,min=2,max=80"`
}

// DeviceTokenRequest registers an FCM device token for push notifications
type DeviceTokenRequest struct {
	DeviceToken string `json:"deviceToken" binding:"required"`
}
