package utils

// Application constants
const (
	// Application name
	AppName = "NPC Pest Control"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// JWT token expiration (24 hours)
	JWTExpiration = "24h"

	// OTP expiration (15 minutes)
	OTPExpiration = "15m"

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Minimum password length
	MinPasswordLength = 8

	// Maximum quantity of one cart line
	MaxLineQuantity = 10
)

// Error messages
const (
	ErrInvalidCredentials = "Invalid email or password"
	ErrUserBlocked        = "Your account has been blocked"
	ErrInvalidToken       = "Invalid or expired token"
	ErrUnauthorized       = "Unauthorized access"
	ErrRecordNotFound     = "Record not found"
	ErrInternalServer     = "Internal server error"
)
