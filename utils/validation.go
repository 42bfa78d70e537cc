package utils

import (
	"regexp"
	"strings"
	"time"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail checks email format
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPassword requires at least 8 characters with upper, lower and digit
func IsValidPassword(password string) bool {
	if len(password) < MinPasswordLength {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// IsValidPhone accepts 10-15 digit numbers with an optional leading +
func IsValidPhone(phone string) bool {
	return regexp.MustCompile(`^\+?[0-9]{10,15}$`).MatchString(phone)
}

// BookingInput carries the booking-flow fields checked before submission.
type BookingInput struct {
	ServiceDate   string
	TimeSlot      string
	Address       string
	AddressID     uint
	PaymentMethod string
	TermsAccepted bool
}

// ValidateBookingInput checks every booking precondition locally and returns
// one field-named message per failure. An empty slice means the request may
// proceed; nothing is sent anywhere until this passes.
func ValidateBookingInput(in BookingInput) []string {
	var problems []string

	if strings.TrimSpace(in.ServiceDate) == "" {
		problems = append(problems, "Please select a service date")
	} else if parsed, err := time.Parse("2006-01-02", in.ServiceDate); err != nil {
		problems = append(problems, "Service date must be in YYYY-MM-DD format")
	} else if parsed.Before(time.Now().Truncate(24 * time.Hour)) {
		problems = append(problems, "Service date cannot be in the past")
	}

	if strings.TrimSpace(in.TimeSlot) == "" {
		problems = append(problems, "Please select a time slot")
	}

	if in.AddressID == 0 && strings.TrimSpace(in.Address) == "" {
		problems = append(problems, "Please provide a service address")
	}

	method := strings.ToLower(strings.TrimSpace(in.PaymentMethod))
	if method != "cash" && method != "online" {
		problems = append(problems, "Payment method must be cash or online")
	}

	if !in.TermsAccepted {
		problems = append(problems, "Please accept the terms and conditions")
	}

	return problems
}
