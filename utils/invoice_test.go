package utils

import (
	"testing"
	"time"

	"github.com/hariprabhu571/npc-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInvoicePDF(t *testing.T) {
	booking := &models.Booking{
		ServiceName:      "Residential Pest Control",
		ServiceDate:      time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:         "10:00 AM - 12:00 PM",
		Subtotal:         2000,
		StandardDiscount: 300,
		CouponCode:       "WELCOME500",
		CouponDiscount:   500,
		TotalAmount:      1200,
		PaymentMethod:    models.PaymentMethodCash,
		PaymentStatus:    models.PaymentStatusPending,
		Status:           models.BookingStatusPending,
		User: models.User{
			FirstName: "Asha",
			LastName:  "Rao",
			Email:     "asha@example.com",
			Phone:     "+919876543210",
		},
		Address: models.Address{
			Line1:      "12 Garden Road",
			City:       "Chennai",
			State:      "TN",
			Country:    "India",
			PostalCode: "600001",
		},
		Items: []models.BookingItem{
			{ServiceTypeName: "Cockroach Control", RoomSize: "2BHK", UnitPrice: 1000, Quantity: 2, Total: 2000},
		},
	}

	pdf, err := BuildInvoicePDF(booking)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	// PDF files start with the %PDF magic bytes
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
