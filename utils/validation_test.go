package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validBookingInput() BookingInput {
	return BookingInput{
		ServiceDate:   time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		TimeSlot:      "10:00 AM - 12:00 PM",
		AddressID:     4,
		PaymentMethod: "cash",
		TermsAccepted: true,
	}
}

func TestValidateBookingInput(t *testing.T) {
	assert.Empty(t, ValidateBookingInput(validBookingInput()))

	t.Run("missing date", func(t *testing.T) {
		in := validBookingInput()
		in.ServiceDate = ""
		problems := ValidateBookingInput(in)
		assert.Contains(t, problems, "Please select a service date")
	})

	t.Run("malformed date", func(t *testing.T) {
		in := validBookingInput()
		in.ServiceDate = "15-03-2026"
		problems := ValidateBookingInput(in)
		assert.Contains(t, problems, "Service date must be in YYYY-MM-DD format")
	})

	t.Run("past date", func(t *testing.T) {
		in := validBookingInput()
		in.ServiceDate = time.Now().AddDate(0, 0, -2).Format("2006-01-02")
		problems := ValidateBookingInput(in)
		assert.Contains(t, problems, "Service date cannot be in the past")
	})

	t.Run("missing slot", func(t *testing.T) {
		in := validBookingInput()
		in.TimeSlot = "  "
		problems := ValidateBookingInput(in)
		assert.Contains(t, problems, "Please select a time slot")
	})

	t.Run("missing address", func(t *testing.T) {
		in := validBookingInput()
		in.AddressID = 0
		in.Address = ""
		problems := ValidateBookingInput(in)
		assert.Contains(t, problems, "Please provide a service address")
	})

	t.Run("free text address is enough", func(t *testing.T) {
		in := validBookingInput()
		in.AddressID = 0
		in.Address = "12 Garden Road, Chennai"
		assert.Empty(t, ValidateBookingInput(in))
	})

	t.Run("bad payment method", func(t *testing.T) {
		in := validBookingInput()
		in.PaymentMethod = "upi"
		problems := ValidateBookingInput(in)
		assert.Contains(t, problems, "Payment method must be cash or online")
	})

	t.Run("terms not accepted", func(t *testing.T) {
		in := validBookingInput()
		in.TermsAccepted = false
		problems := ValidateBookingInput(in)
		assert.Contains(t, problems, "Please accept the terms and conditions")
	})

	t.Run("every problem reported at once", func(t *testing.T) {
		problems := ValidateBookingInput(BookingInput{})
		assert.Len(t, problems, 5)
	})
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("+919876543210"))
	assert.True(t, IsValidPhone("9876543210"))
	assert.False(t, IsValidPhone("12345"))
	assert.False(t, IsValidPhone("phone"))
}
