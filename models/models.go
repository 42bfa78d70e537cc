package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a customer account
type User struct {
	gorm.Model
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	ProfileImage string    `json:"profile_image"`
	IsBlocked    bool      `json:"is_blocked"`
	IsVerified   bool      `json:"is_verified" gorm:"default:false"`
	IsAdmin      bool      `json:"is_admin" gorm:"default:false"`
	OTP          string    `json:"-"`
	OTPExpiresAt time.Time `json:"-"`
	LastLoginAt  time.Time `json:"last_login_at"`
	GoogleID     string    `gorm:"default:null" json:"google_id"`

	Addresses []Address `json:"addresses" gorm:"foreignKey:UserID"`
}

// Admin represents an administrator account
type Admin struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
}

// UserOTP stores a pending OTP for flows that run before the user row exists
type UserOTP struct {
	gorm.Model
	Email     string    `gorm:"index;not null" json:"email"`
	OTP       string    `json:"-"`
	Purpose   string    `json:"purpose"` // registration, password_reset
	ExpiresAt time.Time `json:"expires_at"`
}
