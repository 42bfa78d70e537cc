package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidBookingStatus(t *testing.T) {
	for _, status := range []string{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCompleted,
		BookingStatusCancelled,
	} {
		assert.True(t, IsValidBookingStatus(status), status)
	}
	assert.False(t, IsValidBookingStatus("Shipped"))
	assert.False(t, IsValidBookingStatus(""))
	assert.False(t, IsValidBookingStatus("pending"))
}

func TestCanTransitionBooking(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusPending, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, CanTransitionBooking(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}
