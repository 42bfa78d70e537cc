package models

import (
	"time"

	"gorm.io/gorm"
)

// BlacklistedToken records a JWT invalidated by logout, for both customer and
// admin sessions. Rows past ExpiresAt are safe to purge.
type BlacklistedToken struct {
	gorm.Model
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
}
